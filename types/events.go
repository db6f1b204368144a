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

// Every state changing operation emits one of these events so the operands
// can be audited off-system. Soft failing branches emit their own failure
// event instead of aborting.
const (
	EventTypeDeposit          = "basevault_deposit"
	EventTypeMint             = "basevault_mint"
	EventTypeWithdraw         = "basevault_withdraw"
	EventTypeStakedDeposit    = "basevault_staked_deposit"
	EventTypeStakedRedeem     = "basevault_staked_redeem"
	EventTypeYieldDistributed = "basevault_yield_distributed"
	EventTypeYieldFailed      = "basevault_yield_failed"
	EventTypeCalibrated       = "basevault_calibrated"
	EventTypeRewardsStarted   = "basevault_rewards_started"
	EventTypeParamsUpdated    = "basevault_params_updated"
	EventTypePaused           = "basevault_paused"

	AttributeKeySigner          = "signer"
	AttributeKeyOwner           = "owner"
	AttributeKeyReceiver        = "receiver"
	AttributeKeyAssets          = "assets"
	AttributeKeyShares          = "shares"
	AttributeKeyFee             = "fee"
	AttributeKeyAmount          = "amount"
	AttributeKeyHeight          = "height"
	AttributeKeyReason          = "reason"
	AttributeKeyVault           = "vault"
	AttributeKeyEndTime         = "end_time"
	AttributeKeyOldEstimate     = "old_estimate"
	AttributeKeyNewEstimate     = "new_estimate"
	AttributeKeyBlocksExpected  = "blocks_expected"
	AttributeKeyBlocksActual    = "blocks_actual"
	AttributeKeyBlocksRemaining = "blocks_remaining"
	AttributeKeyVestingDeadline = "vesting_deadline"
	AttributeKeyPaused          = "paused"
)
