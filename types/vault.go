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
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// VaultType distinguishes the two pools sharing the keeper.
type VaultType int32

const (
	VaultUnspecified VaultType = iota
	// VaultFlexible is the main pool: withdrawals trigger the reward
	// schedule's pre and post hooks.
	VaultFlexible
	// VaultStaked is the fee vesting pool: deposits carry a vesting deadline
	// and redemptions are all-or-nothing with an exit fee.
	VaultStaked
)

func (v VaultType) String() string {
	switch v {
	case VaultFlexible:
		return "flexible"
	case VaultStaked:
		return "staked"
	default:
		return "unspecified"
	}
}

// Account returns the module account custodying the vault's assets.
func (v VaultType) Account() sdk.AccAddress {
	if v == VaultStaked {
		return StakedAddress
	}
	return ModuleAddress
}

// VestingRecord tracks a staked pool account's lock. The deadline only moves
// forward via deposits and is reset to zero exactly on full redemption; the
// locked amount accumulates across deposits and is cleared only on full
// redemption.
type VestingRecord struct {
	VestingDeadline time.Time `json:"vesting_deadline"`
	LockedAmount    math.Int  `json:"locked_amount"`
}

// Stats carries aggregate counters for off-system auditing.
type Stats struct {
	FlexibleDepositors    uint64   `json:"flexible_depositors"`
	StakedDepositors      uint64   `json:"staked_depositors"`
	TotalDeposited        math.Int `json:"total_deposited"`
	TotalWithdrawn        math.Int `json:"total_withdrawn"`
	TotalYieldDistributed math.Int `json:"total_yield_distributed"`
	TotalFeesCollected    math.Int `json:"total_fees_collected"`
}

func DefaultStats() Stats {
	return Stats{
		TotalDeposited:        math.ZeroInt(),
		TotalWithdrawn:        math.ZeroInt(),
		TotalYieldDistributed: math.ZeroInt(),
		TotalFeesCollected:    math.ZeroInt(),
	}
}
