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
	"context"
	"errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"basevault.dev/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

// NewQueryServer returns an implementation of the module QueryServer
// interface.
func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

func (k queryServer) Params(ctx context.Context, req *types.QueryParams) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, errors.New("invalid request")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryParamsResponse{Params: params, Paused: k.GetPaused(ctx)}, nil
}

func (k queryServer) Pool(ctx context.Context, req *types.QueryPool) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, errors.New("invalid request")
	}

	totalAssets, err := k.TotalAssets(ctx, req.Vault)
	if err != nil {
		return nil, err
	}
	totalShares, err := k.GetTotalShares(ctx, req.Vault)
	if err != nil {
		return nil, err
	}

	return &types.QueryPoolResponse{TotalAssets: totalAssets, TotalShares: totalShares}, nil
}

func (k queryServer) Schedule(ctx context.Context, req *types.QuerySchedule) (*types.QueryScheduleResponse, error) {
	if req == nil {
		return nil, errors.New("invalid request")
	}

	schedule, err := k.GetSchedule(ctx)
	if err != nil {
		return nil, err
	}
	accrued, err := k.AccruedSinceLast(ctx)
	if err != nil {
		return nil, err
	}
	reserve := k.bank.GetBalance(ctx, types.RewardsAddress, k.denom).Amount

	return &types.QueryScheduleResponse{Schedule: schedule, Accrued: accrued, Reserve: reserve}, nil
}

func (k queryServer) Position(ctx context.Context, req *types.QueryPosition) (*types.QueryPositionResponse, error) {
	if req == nil {
		return nil, errors.New("invalid request")
	}

	address, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	shares, err := k.GetUserShares(ctx, address, req.Vault)
	if err != nil {
		return nil, err
	}
	assets, err := k.ConvertToAssets(ctx, req.Vault, shares)
	if err != nil {
		return nil, err
	}

	res := &types.QueryPositionResponse{Shares: shares, Assets: assets}
	if req.Vault == types.VaultStaked {
		record, found, err := k.GetVestingRecord(ctx, address)
		if err != nil {
			return nil, err
		}
		if found {
			res.VestingDeadline = record.VestingDeadline
			res.LockedAmount = record.LockedAmount
		}
	}

	return res, nil
}

func (k queryServer) Stats(ctx context.Context, req *types.QueryStats) (*types.QueryStatsResponse, error) {
	if req == nil {
		return nil, errors.New("invalid request")
	}

	stats, err := k.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryStatsResponse{Stats: stats}, nil
}

func (k queryServer) PreviewDeposit(ctx context.Context, req *types.QueryPreviewDeposit) (*types.QueryPreviewDepositResponse, error) {
	if req == nil || req.Assets.IsNil() || req.Assets.IsNegative() {
		return nil, types.ErrInvalidValue.Wrap("invalid request")
	}

	shares, err := k.ConvertToShares(ctx, types.VaultFlexible, req.Assets)
	if err != nil {
		return nil, err
	}

	return &types.QueryPreviewDepositResponse{Shares: shares}, nil
}

func (k queryServer) PreviewMint(ctx context.Context, req *types.QueryPreviewMint) (*types.QueryPreviewMintResponse, error) {
	if req == nil || req.Shares.IsNil() || req.Shares.IsNegative() {
		return nil, types.ErrInvalidValue.Wrap("invalid request")
	}

	assets, err := k.assetsForMint(ctx, types.VaultFlexible, req.Shares)
	if err != nil {
		return nil, err
	}

	return &types.QueryPreviewMintResponse{Assets: assets}, nil
}

func (k queryServer) PreviewWithdraw(ctx context.Context, req *types.QueryPreviewWithdraw) (*types.QueryPreviewWithdrawResponse, error) {
	if req == nil || req.Assets.IsNil() || req.Assets.IsNegative() {
		return nil, types.ErrInvalidValue.Wrap("invalid request")
	}

	shares, err := k.sharesForWithdraw(ctx, types.VaultFlexible, req.Assets)
	if err != nil {
		return nil, err
	}

	return &types.QueryPreviewWithdrawResponse{Shares: shares}, nil
}

func (k queryServer) PreviewRedeem(ctx context.Context, req *types.QueryPreviewRedeem) (*types.QueryPreviewRedeemResponse, error) {
	if req == nil || req.Shares.IsNil() || req.Shares.IsNegative() {
		return nil, types.ErrInvalidValue.Wrap("invalid request")
	}

	assets, err := k.ConvertToAssets(ctx, types.VaultFlexible, req.Shares)
	if err != nil {
		return nil, err
	}

	return &types.QueryPreviewRedeemResponse{Assets: assets}, nil
}

func (k queryServer) PreviewStakedRedeem(ctx context.Context, req *types.QueryPreviewStakedRedeem) (*types.QueryPreviewStakedRedeemResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidValue.Wrap("invalid request")
	}

	address, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}

	shares, err := k.GetUserShares(ctx, address, types.VaultStaked)
	if err != nil {
		return nil, err
	}

	payout, fee, err := k.previewStakedRedeem(ctx, address, shares)
	if err != nil {
		return nil, err
	}

	return &types.QueryPreviewStakedRedeemResponse{Assets: payout, Fee: fee}, nil
}
