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

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the module's mutating entry surface. Each call executes as a
// single atomic unit against the shared pool state.
type MsgServer interface {
	Deposit(ctx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
	Mint(ctx context.Context, msg *MsgMint) (*MsgMintResponse, error)
	Withdraw(ctx context.Context, msg *MsgWithdraw) (*MsgWithdrawResponse, error)
	Redeem(ctx context.Context, msg *MsgRedeem) (*MsgRedeemResponse, error)

	StakedDeposit(ctx context.Context, msg *MsgStakedDeposit) (*MsgStakedDepositResponse, error)
	StakedRedeem(ctx context.Context, msg *MsgStakedRedeem) (*MsgStakedRedeemResponse, error)

	StartRewards(ctx context.Context, msg *MsgStartRewards) (*MsgStartRewardsResponse, error)
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	SetPaused(ctx context.Context, msg *MsgSetPaused) (*MsgSetPausedResponse, error)
}

type MsgDeposit struct {
	Signer   string   `json:"signer"`
	Receiver string   `json:"receiver"`
	Assets   math.Int `json:"assets"`
}

type MsgDepositResponse struct {
	Shares math.Int `json:"shares"`
}

func (m *MsgDeposit) ValidateBasic() error {
	if err := validateAddress(m.Signer, "signer"); err != nil {
		return err
	}
	if err := validateAddress(m.Receiver, "receiver"); err != nil {
		return err
	}
	return validateAmount(m.Assets, "assets")
}

type MsgMint struct {
	Signer   string   `json:"signer"`
	Receiver string   `json:"receiver"`
	Shares   math.Int `json:"shares"`
}

type MsgMintResponse struct {
	Assets math.Int `json:"assets"`
}

func (m *MsgMint) ValidateBasic() error {
	if err := validateAddress(m.Signer, "signer"); err != nil {
		return err
	}
	if err := validateAddress(m.Receiver, "receiver"); err != nil {
		return err
	}
	return validateAmount(m.Shares, "shares")
}

type MsgWithdraw struct {
	Signer   string   `json:"signer"`
	Receiver string   `json:"receiver"`
	Owner    string   `json:"owner"`
	Assets   math.Int `json:"assets"`
}

type MsgWithdrawResponse struct {
	Shares math.Int `json:"shares"`
}

func (m *MsgWithdraw) ValidateBasic() error {
	if err := validateAddress(m.Signer, "signer"); err != nil {
		return err
	}
	if err := validateAddress(m.Receiver, "receiver"); err != nil {
		return err
	}
	if err := validateAddress(m.Owner, "owner"); err != nil {
		return err
	}
	if m.Assets.IsNil() || m.Assets.IsNegative() {
		return errors.Wrap(ErrInvalidValue, "assets cannot be nil or negative")
	}
	return nil
}

type MsgRedeem struct {
	Signer   string   `json:"signer"`
	Receiver string   `json:"receiver"`
	Owner    string   `json:"owner"`
	Shares   math.Int `json:"shares"`
}

type MsgRedeemResponse struct {
	Assets math.Int `json:"assets"`
}

func (m *MsgRedeem) ValidateBasic() error {
	if err := validateAddress(m.Signer, "signer"); err != nil {
		return err
	}
	if err := validateAddress(m.Receiver, "receiver"); err != nil {
		return err
	}
	if err := validateAddress(m.Owner, "owner"); err != nil {
		return err
	}
	if m.Shares.IsNil() || m.Shares.IsNegative() {
		return errors.Wrap(ErrInvalidValue, "shares cannot be nil or negative")
	}
	return nil
}

type MsgStakedDeposit struct {
	Signer      string    `json:"signer"`
	Receiver    string    `json:"receiver"`
	Assets      math.Int  `json:"assets"`
	VestingTime time.Time `json:"vesting_time"`
}

type MsgStakedDepositResponse struct {
	Shares          math.Int  `json:"shares"`
	VestingDeadline time.Time `json:"vesting_deadline"`
}

func (m *MsgStakedDeposit) ValidateBasic() error {
	if err := validateAddress(m.Signer, "signer"); err != nil {
		return err
	}
	if err := validateAddress(m.Receiver, "receiver"); err != nil {
		return err
	}
	return validateAmount(m.Assets, "assets")
}

type MsgStakedRedeem struct {
	Signer   string `json:"signer"`
	Receiver string `json:"receiver"`
	Owner    string `json:"owner"`
}

type MsgStakedRedeemResponse struct {
	Assets math.Int `json:"assets"`
	Fee    math.Int `json:"fee"`
}

func (m *MsgStakedRedeem) ValidateBasic() error {
	if err := validateAddress(m.Signer, "signer"); err != nil {
		return err
	}
	if err := validateAddress(m.Receiver, "receiver"); err != nil {
		return err
	}
	return validateAddress(m.Owner, "owner")
}

type MsgStartRewards struct {
	Authority         string `json:"authority"`
	BlockTimeEstimate int64  `json:"block_time_estimate"`
}

type MsgStartRewardsResponse struct {
	EndTime         time.Time `json:"end_time"`
	BlocksRemaining int64     `json:"blocks_remaining"`
}

func (m *MsgStartRewards) ValidateBasic() error {
	if err := validateAddress(m.Authority, "authority"); err != nil {
		return err
	}
	if m.BlockTimeEstimate <= 0 {
		return errors.Wrap(ErrInvalidBlockTime, "block time estimate must be positive")
	}
	return nil
}

type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

func (m *MsgUpdateParams) ValidateBasic() error {
	if err := validateAddress(m.Authority, "authority"); err != nil {
		return err
	}
	if err := m.Params.Validate(); err != nil {
		return errors.Wrap(ErrInvalidValue, err.Error())
	}
	return nil
}

type MsgSetPaused struct {
	Authority string `json:"authority"`
	Paused    bool   `json:"paused"`
}

type MsgSetPausedResponse struct{}

func (m *MsgSetPaused) ValidateBasic() error {
	return validateAddress(m.Authority, "authority")
}

func validateAddress(address, field string) error {
	if address == "" {
		return errors.Wrapf(ErrInvalidAddress, "%s cannot be empty", field)
	}
	if _, err := sdk.AccAddressFromBech32(address); err != nil {
		return errors.Wrapf(ErrInvalidAddress, "invalid %s address %s", field, address)
	}
	return nil
}

func validateAmount(amount math.Int, field string) error {
	if amount.IsNil() || !amount.IsPositive() {
		return errors.Wrapf(ErrInvalidValue, "%s must be positive", field)
	}
	return nil
}
