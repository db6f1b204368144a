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

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ShareBalance is one account's share position in one vault.
type ShareBalance struct {
	Address string    `json:"address"`
	Vault   VaultType `json:"vault"`
	Shares  math.Int  `json:"shares"`
}

// VestingEntry is one staked pool account's vesting record.
type VestingEntry struct {
	Address string        `json:"address"`
	Record  VestingRecord `json:"record"`
}

type GenesisState struct {
	Params   Params         `json:"params"`
	Paused   bool           `json:"paused"`
	Schedule RewardSchedule `json:"schedule"`
	Shares   []ShareBalance `json:"shares"`
	Vesting  []VestingEntry `json:"vesting"`
	Stats    Stats          `json:"stats"`
}

func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Stats:  DefaultStats(),
	}
}

func (gs *GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	for _, balance := range gs.Shares {
		if _, err := sdk.AccAddressFromBech32(balance.Address); err != nil {
			return fmt.Errorf("invalid share balance address %s: %w", balance.Address, err)
		}
		if balance.Vault != VaultFlexible && balance.Vault != VaultStaked {
			return fmt.Errorf("invalid vault type %d for %s", balance.Vault, balance.Address)
		}
		if balance.Shares.IsNil() || !balance.Shares.IsPositive() {
			return fmt.Errorf("share balance for %s must be positive", balance.Address)
		}
	}
	for _, entry := range gs.Vesting {
		if _, err := sdk.AccAddressFromBech32(entry.Address); err != nil {
			return fmt.Errorf("invalid vesting address %s: %w", entry.Address, err)
		}
		if entry.Record.LockedAmount.IsNil() || entry.Record.LockedAmount.IsNegative() {
			return fmt.Errorf("locked amount for %s cannot be negative", entry.Address)
		}
	}
	if gs.Schedule.Started && gs.Schedule.BlockTimeEstimate <= 0 {
		return fmt.Errorf("started schedule requires a positive block time estimate")
	}
	return nil
}
