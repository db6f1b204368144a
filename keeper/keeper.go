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

package keeper

import (
	"sync"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"basevault.dev/types"
)

type Keeper struct {
	denom     string
	authority string

	store  store.KVStoreService
	logger log.Logger
	bank   types.BankKeeper

	// mu serializes the mutating entry points of this pool instance. The
	// platform already linearizes transactions; the lock additionally rejects
	// re-entrant invocation from within an in-flight operation.
	mu sync.Mutex

	Paused        collections.Item[bool]
	SchemaVersion collections.Item[uint64]
	Params        collections.Item[types.Params]
	Stats         collections.Item[types.Stats]
	Schedule      collections.Item[types.RewardSchedule]
	TotalShares   collections.Map[int32, math.Int]
	UserShares    collections.Map[collections.Pair[[]byte, int32], math.Int]
	Vesting       collections.Map[[]byte, types.VestingRecord]
}

func NewKeeper(
	denom string,
	authority string,
	store store.KVStoreService,
	logger log.Logger,
	bank types.BankKeeper,
) *Keeper {
	builder := collections.NewSchemaBuilder(store)

	keeper := &Keeper{
		denom:     denom,
		authority: authority,

		store:  store,
		logger: logger.With("module", types.ModuleName),
		bank:   bank,

		Paused:        collections.NewItem(builder, types.PausedKey, "paused", collections.BoolValue),
		SchemaVersion: collections.NewItem(builder, types.SchemaVersionKey, "schema_version", collections.Uint64Value),
		Params:        collections.NewItem(builder, types.ParamsKey, "params", types.JSONValue[types.Params]("params")),
		Stats:         collections.NewItem(builder, types.StatsKey, "stats", types.JSONValue[types.Stats]("stats")),
		Schedule:      collections.NewItem(builder, types.RewardScheduleKey, "reward_schedule", types.JSONValue[types.RewardSchedule]("reward_schedule")),
		TotalShares:   collections.NewMap(builder, types.TotalSharesPrefix, "total_shares", collections.Int32Key, sdk.IntValue),
		UserShares:    collections.NewMap(builder, types.UserSharesPrefix, "user_shares", collections.PairKeyCodec(collections.BytesKey, collections.Int32Key), sdk.IntValue),
		Vesting:       collections.NewMap(builder, types.VestingPrefix, "vesting", collections.BytesKey, types.JSONValue[types.VestingRecord]("vesting_record")),
	}

	_, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return keeper
}

// SetBankKeeper overwrites the bank keeper used in this module.
func (k *Keeper) SetBankKeeper(bank types.BankKeeper) {
	k.bank = bank
}

// GetDenom is a utility that returns the configured denomination of the
// pooled asset.
func (k *Keeper) GetDenom() string {
	return k.denom
}

// GetAuthority returns the account allowed to execute administrative entries.
func (k *Keeper) GetAuthority() string {
	return k.authority
}
