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
	"context"
	"time"

	"cosmossdk.io/math"
)

// QueryServer is the module's read-only entry surface. Previews price
// hypothetical operations at the current exchange rate; none of the calls
// mutate state.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParams) (*QueryParamsResponse, error)
	Pool(ctx context.Context, req *QueryPool) (*QueryPoolResponse, error)
	Schedule(ctx context.Context, req *QuerySchedule) (*QueryScheduleResponse, error)
	Position(ctx context.Context, req *QueryPosition) (*QueryPositionResponse, error)
	Stats(ctx context.Context, req *QueryStats) (*QueryStatsResponse, error)

	PreviewDeposit(ctx context.Context, req *QueryPreviewDeposit) (*QueryPreviewDepositResponse, error)
	PreviewMint(ctx context.Context, req *QueryPreviewMint) (*QueryPreviewMintResponse, error)
	PreviewWithdraw(ctx context.Context, req *QueryPreviewWithdraw) (*QueryPreviewWithdrawResponse, error)
	PreviewRedeem(ctx context.Context, req *QueryPreviewRedeem) (*QueryPreviewRedeemResponse, error)
	PreviewStakedRedeem(ctx context.Context, req *QueryPreviewStakedRedeem) (*QueryPreviewStakedRedeemResponse, error)
}

type QueryParams struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
	Paused bool   `json:"paused"`
}

type QueryPool struct {
	Vault VaultType `json:"vault"`
}

type QueryPoolResponse struct {
	TotalAssets math.Int `json:"total_assets"`
	TotalShares math.Int `json:"total_shares"`
}

type QuerySchedule struct{}

type QueryScheduleResponse struct {
	Schedule RewardSchedule `json:"schedule"`
	// Accrued is the yield earned since the last distribution but not yet
	// swept into the flexible pool.
	Accrued math.Int `json:"accrued"`
	// Reserve is the undistributed balance of the rewards account.
	Reserve math.Int `json:"reserve"`
}

type QueryPosition struct {
	Address string    `json:"address"`
	Vault   VaultType `json:"vault"`
}

type QueryPositionResponse struct {
	Shares math.Int `json:"shares"`
	Assets math.Int `json:"assets"`
	// VestingDeadline and LockedAmount are only set for staked positions.
	VestingDeadline time.Time `json:"vesting_deadline,omitempty"`
	LockedAmount    math.Int  `json:"locked_amount,omitempty"`
}

type QueryStats struct{}

type QueryStatsResponse struct {
	Stats Stats `json:"stats"`
}

type QueryPreviewDeposit struct {
	Assets math.Int `json:"assets"`
}

type QueryPreviewDepositResponse struct {
	Shares math.Int `json:"shares"`
}

type QueryPreviewMint struct {
	Shares math.Int `json:"shares"`
}

type QueryPreviewMintResponse struct {
	Assets math.Int `json:"assets"`
}

type QueryPreviewWithdraw struct {
	Assets math.Int `json:"assets"`
}

type QueryPreviewWithdrawResponse struct {
	Shares math.Int `json:"shares"`
}

type QueryPreviewRedeem struct {
	Shares math.Int `json:"shares"`
}

type QueryPreviewRedeemResponse struct {
	Assets math.Int `json:"assets"`
}

type QueryPreviewStakedRedeem struct {
	Address string `json:"address"`
}

type QueryPreviewStakedRedeemResponse struct {
	Assets math.Int `json:"assets"`
	Fee    math.Int `json:"fee"`
}
