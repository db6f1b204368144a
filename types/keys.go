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

import authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

const ModuleName = "basevault"

var (
	// ModuleAddress is the account custodying the flexible pool's assets.
	ModuleAddress = authtypes.NewModuleAddress(ModuleName)
	// StakedAddress is the account custodying the staked pool's assets.
	StakedAddress = authtypes.NewModuleAddress(ModuleName + "/staked")
	// RewardsAddress holds the reward reserve that is gradually released into
	// the flexible pool over the rewards horizon.
	RewardsAddress = authtypes.NewModuleAddress(ModuleName + "/rewards")
)

var (
	ParamsKey         = []byte("basevault/params")
	PausedKey         = []byte("basevault/paused")
	SchemaVersionKey  = []byte("basevault/schema_version")
	StatsKey          = []byte("basevault/stats")
	RewardScheduleKey = []byte("basevault/reward_schedule")
	TotalSharesPrefix = []byte("basevault/total_shares/")
	UserSharesPrefix  = []byte("basevault/user_shares/")
	VestingPrefix     = []byte("basevault/vesting/")
)
