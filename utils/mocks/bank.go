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

package mocks

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"basevault.dev/types"
)

var _ types.BankKeeper = BankKeeper{}

// BankKeeper is an in-memory bank used in testing. Transfers out of an
// address listed in Failing are rejected, which lets tests exercise the
// degraded paths around yield distribution.
type BankKeeper struct {
	Balances map[string]sdk.Coins
	Failing  map[string]bool
}

func (k BankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.Coin{
		Denom:  denom,
		Amount: k.Balances[addr.String()].AmountOf(denom),
	}
}

func (k BankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	from := fromAddr.String()
	to := toAddr.String()

	if k.Failing[from] {
		return fmt.Errorf("transfers from %s are disabled", from)
	}

	balance, negative := k.Balances[from].SafeSub(amt...)
	if negative {
		return fmt.Errorf("%s has insufficient funds to send %s", from, amt)
	}

	k.Balances[from] = balance
	k.Balances[to] = k.Balances[to].Add(amt...)

	return nil
}
