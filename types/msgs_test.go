// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, NASD Inc. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"basevault.dev/types"
	"basevault.dev/utils"
)

func TestMsgValidation(t *testing.T) {
	bob := utils.TestAccount()

	cases := []struct {
		name string
		msg  interface{ ValidateBasic() error }
		err  error
	}{
		{
			"valid deposit",
			&types.MsgDeposit{Signer: bob.Address, Receiver: bob.Address, Assets: math.NewInt(1)},
			nil,
		},
		{
			"deposit with malformed signer",
			&types.MsgDeposit{Signer: "nope", Receiver: bob.Address, Assets: math.NewInt(1)},
			types.ErrInvalidAddress,
		},
		{
			"deposit with empty receiver",
			&types.MsgDeposit{Signer: bob.Address, Assets: math.NewInt(1)},
			types.ErrInvalidAddress,
		},
		{
			"deposit of zero",
			&types.MsgDeposit{Signer: bob.Address, Receiver: bob.Address, Assets: math.ZeroInt()},
			types.ErrInvalidValue,
		},
		{
			"withdraw of zero passes basic validation",
			&types.MsgWithdraw{Signer: bob.Address, Receiver: bob.Address, Owner: bob.Address, Assets: math.ZeroInt()},
			nil,
		},
		{
			"withdraw of negative",
			&types.MsgWithdraw{Signer: bob.Address, Receiver: bob.Address, Owner: bob.Address, Assets: math.NewInt(-1)},
			types.ErrInvalidValue,
		},
		{
			"redeem without owner",
			&types.MsgRedeem{Signer: bob.Address, Receiver: bob.Address, Shares: math.NewInt(1)},
			types.ErrInvalidAddress,
		},
		{
			"start rewards with zero estimate",
			&types.MsgStartRewards{Authority: bob.Address},
			types.ErrInvalidBlockTime,
		},
		{
			"update params with bad fee",
			&types.MsgUpdateParams{Authority: bob.Address, Params: types.Params{
				DecimalsOffset: 3,
				MinDeposit:     math.NewInt(1),
				MaxMint:        math.ZeroInt(),
				FeeBps:         20_000,
				MinStakingTime: 1,
			}},
			types.ErrInvalidValue,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.err == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.err)
			}
		})
	}
}
