// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"path/filepath"

	"github.com/elastic/gosigar"

	"github.com/heatchain/heat/bridgedb"
	"github.com/heatchain/heat/lvldb"
)

const (
	mainDBCacheMB          = 128
	openFilesCacheCapacity = 500
)

// cacheSizeMB caps the requested cache to half of physical RAM.
func cacheSizeMB(sizeMB int) int {
	var mem gosigar.Mem
	if err := mem.Get(); err != nil {
		logger.Warn("failed to get total mem", "err", err)
		return sizeMB
	}
	limitMB := int(mem.Total / 1024 / 1024 / 2)
	if sizeMB > limitMB {
		logger.Warn("cache size(MB) limited", "limit", limitMB)
		return limitMB
	}
	return sizeMB
}

func openMainDB(instanceDir string) *lvldb.LevelDB {
	dir := filepath.Join(instanceDir, "main.db")
	db, err := lvldb.New(dir, lvldb.Options{
		CacheSize:              cacheSizeMB(mainDBCacheMB),
		OpenFilesCacheCapacity: openFilesCacheCapacity,
	})
	if err != nil {
		fatalf("open main database at '%v': %v", dir, err)
	}
	return db
}

func openBridgeDB(instanceDir string) *bridgedb.BridgeDB {
	dir := filepath.Join(instanceDir, "bridge.db")
	db, err := bridgedb.New(dir)
	if err != nil {
		fatalf("open bridge database at '%v': %v", dir, err)
	}
	return db
}
