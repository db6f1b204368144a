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

	"cosmossdk.io/errors"
)

// RewardSchedule is the self calibrating release schedule for the reward
// reserve. It is created once by StartRewards and only its estimate fields
// mutate afterwards; the reserve balance itself lives on RewardsAddress.
type RewardSchedule struct {
	Started                bool      `json:"started"`
	EndTime                time.Time `json:"end_time"`
	BlockTimeEstimate      int64     `json:"block_time_estimate"`
	BlocksRemaining        int64     `json:"blocks_remaining"`
	LastDistributionHeight int64     `json:"last_distribution_height"`
	LastCalibrationTime    time.Time `json:"last_calibration_time"`
	LastCalibrationHeight  int64     `json:"last_calibration_height"`
}

// RemainingBlocks estimates how many blocks fit into the window between now
// and endTime under the given block time estimate. One is added after the
// integer division so the result is never zero while the window is open,
// which keeps the per block rate's divisor safe.
func RemainingBlocks(endTime, now time.Time, blockTimeEstimate int64) int64 {
	seconds := endTime.Unix() - now.Unix()
	if seconds < 0 {
		seconds = 0
	}
	return seconds/blockTimeEstimate + 1
}

// NextBlockTimeEstimate applies one calibration step. The estimate moves one
// second toward the value that would make expected block production match
// what was observed: blocks arriving faster than expected means blocks are
// shorter than assumed, so the estimate shrinks, and vice versa. The unit
// step damps transient rate spikes instead of jumping to the measured rate.
func NextBlockTimeEstimate(current, blocksExpected, blocksActual int64) (int64, error) {
	if blocksExpected < blocksActual {
		if current <= 1 {
			return 0, errors.Wrap(ErrInvalidBlockTime, "estimate would reach zero")
		}
		return current - 1, nil
	}
	return current + 1, nil
}
