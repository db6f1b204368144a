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

package types

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// MinimumShares is the smallest number of shares a deposit may mint,
	// bounding the depositor's rounding loss to at most 0.1%.
	MinimumShares = 1000

	// FeeDenominator expresses exit fees in basis points.
	FeeDenominator = 10_000

	// RewardsHorizon is the fixed wall-clock window over which the reward
	// reserve is designed to fully deplete.
	RewardsHorizon = 93 * 24 * time.Hour

	// CalibrationInterval is the minimum spacing between two adjustments of
	// the block time estimate.
	CalibrationInterval = 24 * time.Hour
)

// Params holds the governable configuration of both pools.
type Params struct {
	// DecimalsOffset fixes the virtual share offset 10^DecimalsOffset used by
	// the share conversion. Set at genesis and never changed afterwards.
	DecimalsOffset uint32 `json:"decimals_offset"`
	// MinDeposit is the absolute floor on deposited assets.
	MinDeposit math.Int `json:"min_deposit"`
	// MaxMint caps the shares a single mint may request. Zero means no cap.
	MaxMint math.Int `json:"max_mint"`
	// FeeBps is the staked pool's exit fee in basis points.
	FeeBps int64 `json:"fee_bps"`
	// MinStakingTime is the minimum future lock, in seconds, every staked
	// deposit must still satisfy at the moment of deposit.
	MinStakingTime int64 `json:"min_staking_time"`
	// FeeRecipient receives the staked pool's exit fees.
	FeeRecipient string `json:"fee_recipient"`
}

func DefaultParams() Params {
	return Params{
		DecimalsOffset: 3,
		MinDeposit:     math.NewInt(1000),
		MaxMint:        math.ZeroInt(),
		FeeBps:         100,
		MinStakingTime: int64((30 * 24 * time.Hour).Seconds()),
		FeeRecipient:   "",
	}
}

func (p Params) Validate() error {
	if p.DecimalsOffset == 0 || p.DecimalsOffset > 18 {
		return fmt.Errorf("decimals offset must be between 1 and 18, got %d", p.DecimalsOffset)
	}
	if p.MinDeposit.IsNil() || !p.MinDeposit.IsPositive() {
		return fmt.Errorf("minimum deposit must be positive")
	}
	if p.MaxMint.IsNil() || p.MaxMint.IsNegative() {
		return fmt.Errorf("maximum mint cannot be negative")
	}
	if p.FeeBps < 0 || p.FeeBps > FeeDenominator {
		return fmt.Errorf("fee must be between 0 and %d basis points, got %d", FeeDenominator, p.FeeBps)
	}
	if p.MinStakingTime <= 0 {
		return fmt.Errorf("minimum staking time must be positive")
	}
	if p.FeeRecipient != "" {
		if _, err := sdk.AccAddressFromBech32(p.FeeRecipient); err != nil {
			return fmt.Errorf("invalid fee recipient: %w", err)
		}
	}
	return nil
}
