// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

import (
	"errors"
	"os"

	"github.com/go-kratos/kratos/v2/log"
)

// Init runs the self-validator over the static feature table and returns
// its result. Library callers that want to handle a logic error themselves
// (rather than aborting the process) should call this instead of MustInit.
func Init() error {
	return Validate(featureTable)
}

// MustInit runs Init and, on failure, logs every violation through logger
// and terminates the process. It is meant to be called once from a
// command's main, mirroring the fail-fast startup check the teacher runs
// before trusting any parsed binary: a program that queries this catalog
// against an inconsistent table is a programmer error, not a runtime
// condition to recover from.
func MustInit(logger log.Logger) {
	helper := log.NewHelper(log.NewFilter(logger, log.FilterLevel(log.LevelError)))

	err := Init()
	if err == nil {
		return
	}

	var tableErr *TableLogicError
	if !errors.As(err, &tableErr) {
		helper.Errorf("vcp: catalog self-check failed: %v", err)
		os.Exit(1)
	}

	for _, v := range tableErr.Violations {
		if v.Version == (Version{}) {
			helper.Errorf("vcp: feature 0x%02X: %s", v.Code, v.Rule)
			continue
		}
		helper.Errorf("vcp: feature 0x%02X at %s: %s", v.Code, v.Version, v.Rule)
	}
	os.Exit(1)
}
