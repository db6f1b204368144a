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

	"cosmossdk.io/collections"
)

// CurrentSchemaVersion is the state layout version written by InitGenesis.
const CurrentSchemaVersion uint64 = 1

// Migrator handles in-place state migrations between schema versions.
type Migrator struct {
	keeper *Keeper
}

func NewMigrator(keeper *Keeper) Migrator {
	return Migrator{keeper: keeper}
}

// GetSchemaVersion returns the stored schema version, zero when the module
// has never been initialized.
func (k *Keeper) GetSchemaVersion(ctx context.Context) (uint64, error) {
	version, err := k.SchemaVersion.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return version, nil
}

// Migrate1to2 is the placeholder for the next schema bump. It exists so the
// migration wiring is exercised before a real migration lands.
func (m Migrator) Migrate1to2(ctx context.Context) error {
	return m.keeper.SchemaVersion.Set(ctx, 2)
}
