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

// calibsim replays the reward release schedule against a synthetic chain to
// see how the block time estimate converges and how evenly the reserve
// drains. Useful for picking a starting estimate before funding a horizon.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"cosmossdk.io/math"
	"gopkg.in/yaml.v3"

	"basevault.dev/types"
)

// Config describes one simulation scenario.
type Config struct {
	// InitialEstimate is the block time estimate, in seconds, the schedule
	// starts with.
	InitialEstimate int64 `yaml:"initial_estimate"`
	// ActualBlockTime is the true block time, in seconds, of the simulated
	// chain.
	ActualBlockTime int64 `yaml:"actual_block_time"`
	// Reserve is the funded reward amount.
	Reserve int64 `yaml:"reserve"`
	// RedemptionInterval is how many blocks pass between redemptions, which
	// are the only events that distribute and calibrate.
	RedemptionInterval int64 `yaml:"redemption_interval"`
}

func (c Config) Validate() error {
	if c.InitialEstimate <= 0 {
		return fmt.Errorf("initial estimate must be positive")
	}
	if c.ActualBlockTime <= 0 {
		return fmt.Errorf("actual block time must be positive")
	}
	if c.Reserve <= 0 {
		return fmt.Errorf("reserve must be positive")
	}
	if c.RedemptionInterval <= 0 {
		return fmt.Errorf("redemption interval must be positive")
	}
	return nil
}

// load reads the scenario from a YAML file, falling back to defaults when
// the file does not exist.
func load(path string) (Config, error) {
	cfg := Config{
		InitialEstimate:    4,
		ActualBlockTime:    6,
		Reserve:            10_000_000,
		RedemptionInterval: 100,
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	return cfg, nil
}

func main() {
	log.SetFlags(log.LstdFlags)

	path := "calibsim.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := load(path)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	log.Printf("[INFO] estimate=%ds actual=%ds reserve=%d redemption every %d blocks",
		cfg.InitialEstimate, cfg.ActualBlockTime, cfg.Reserve, cfg.RedemptionInterval)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(types.RewardsHorizon)

	schedule := types.RewardSchedule{
		Started:             true,
		EndTime:             end,
		BlockTimeEstimate:   cfg.InitialEstimate,
		BlocksRemaining:     types.RemainingBlocks(end, start, cfg.InitialEstimate),
		LastCalibrationTime: start,
	}

	reserve := math.NewInt(cfg.Reserve)
	distributed := math.ZeroInt()
	calibrations := 0

	var height int64
	now := start
	for now.Before(end) && reserve.IsPositive() {
		height++
		now = now.Add(time.Duration(cfg.ActualBlockTime) * time.Second)

		if height%cfg.RedemptionInterval != 0 {
			continue
		}

		// Distribute what accrued since the last redemption.
		elapsed := height - schedule.LastDistributionHeight
		if elapsed > schedule.BlocksRemaining {
			elapsed = schedule.BlocksRemaining
		}
		if elapsed > 0 && schedule.BlocksRemaining > 0 {
			accrued := reserve.QuoRaw(schedule.BlocksRemaining).MulRaw(elapsed)
			if accrued.GT(reserve) {
				accrued = reserve
			}
			reserve = reserve.Sub(accrued)
			distributed = distributed.Add(accrued)
			schedule.BlocksRemaining -= elapsed
			schedule.LastDistributionHeight = height
		}

		// Calibrate at most once a day.
		if now.Sub(schedule.LastCalibrationTime) <= types.CalibrationInterval ||
			height <= schedule.LastCalibrationHeight {
			continue
		}
		expected := int64(now.Sub(schedule.LastCalibrationTime).Seconds()) / schedule.BlockTimeEstimate
		actual := height - schedule.LastCalibrationHeight
		next, err := types.NextBlockTimeEstimate(schedule.BlockTimeEstimate, expected, actual)
		if err != nil {
			log.Fatalf("[FATAL] calibration: %v", err)
		}
		if next != schedule.BlockTimeEstimate {
			log.Printf("[INFO] day %3d height %8d estimate %ds -> %ds",
				int(now.Sub(start).Hours()/24), height, schedule.BlockTimeEstimate, next)
		}
		schedule.BlockTimeEstimate = next
		schedule.BlocksRemaining = types.RemainingBlocks(end, now, next)
		schedule.LastCalibrationTime = now
		schedule.LastCalibrationHeight = height
		calibrations++
	}

	log.Printf("[INFO] done after %d blocks (%.1f days)", height, now.Sub(start).Hours()/24)
	log.Printf("[INFO] final estimate: %ds (true block time %ds)", schedule.BlockTimeEstimate, cfg.ActualBlockTime)
	log.Printf("[INFO] calibrations: %d", calibrations)
	log.Printf("[INFO] distributed: %s of %d, leftover %s", distributed, cfg.Reserve, reserve)
}
