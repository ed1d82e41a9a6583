// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package logsplit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbattle/engine/logsplit"
)

// TestSplitLogs_FiltersSplitLogs carries over the original source's
// filters_split_logs fixture (battler-service/src/log.rs) verbatim.
func TestSplitLogs_FiltersSplitLogs(t *testing.T) {
	logs := logsplit.NewSplitLogs(2)
	logs.Append([]string{
		"time|time:123",
		"abc|def",
		"split|side:0",
		"ghi|hp:255/255",
		"ghi|hp:100/100",
		"jkl|mno",
		"split|side:1",
		"pqr|move:stu|ability:vwx",
		"pqr|move:stu",
	})

	assert.Equal(t, []string{
		"time|time:123",
		"abc|def",
		"ghi|hp:100/100",
		"jkl|mno",
		"pqr|move:stu",
	}, logs.PublicLog().Entries())

	side0, ok := logs.SideLog(0)
	require.True(t, ok)
	assert.Equal(t, []string{
		"time|time:123",
		"abc|def",
		"ghi|hp:255/255",
		"jkl|mno",
		"pqr|move:stu",
	}, side0.Entries())

	side1, ok := logs.SideLog(1)
	require.True(t, ok)
	assert.Equal(t, []string{
		"time|time:123",
		"abc|def",
		"ghi|hp:100/100",
		"jkl|mno",
		"pqr|move:stu|ability:vwx",
	}, side1.Entries())

	_, ok = logs.SideLog(2)
	assert.False(t, ok)
}

// TestSplitLogs_PublishesFilteredLogs mirrors publishes_filtered_logs: each
// log's subscribers see only the entries meant for them, in order.
func TestSplitLogs_PublishesFilteredLogs(t *testing.T) {
	logs := logsplit.NewSplitLogs(2)

	_, publicCh := logs.PublicLog().Subscribe()
	side0, _ := logs.SideLog(0)
	side1, _ := logs.SideLog(1)
	_, side0Ch := side0.Subscribe()
	_, side1Ch := side1.Subscribe()

	logs.Append([]string{"split|side:0", "ghi|hp:255/255", "ghi|hp:100/100", "public"})

	publicEntry := <-publicCh
	assert.Equal(t, logsplit.Entry{Index: 0, Content: "ghi|hp:100/100"}, publicEntry)

	side0Entry := <-side0Ch
	assert.Equal(t, logsplit.Entry{Index: 0, Content: "ghi|hp:255/255"}, side0Entry)

	side1Entry := <-side1Ch
	assert.Equal(t, logsplit.Entry{Index: 0, Content: "ghi|hp:100/100"}, side1Entry)
}

func TestSplitLogs_MissingFollowUpEntriesAreTolerated(t *testing.T) {
	logs := logsplit.NewSplitLogs(1)
	logs.Append([]string{"before", "split|side:0"})

	assert.Equal(t, []string{"before"}, logs.PublicLog().Entries())
	side0, _ := logs.SideLog(0)
	assert.Equal(t, []string{"before"}, side0.Entries())
}

func TestLog_LastAndUnsubscribe(t *testing.T) {
	log := logsplit.NewLog()
	_, ok := log.Last()
	assert.False(t, ok)

	id, ch := log.Subscribe()
	assert.Equal(t, 1, log.SubscriberCount())

	log.Unsubscribe(id)
	assert.Equal(t, 0, log.SubscriberCount())
	_, open := <-ch
	assert.False(t, open, "channel should be closed after unsubscribe")
}

func TestSplitLogs_Sweep(t *testing.T) {
	logs := logsplit.NewSplitLogs(2)
	_, ch := logs.PublicLog().Subscribe()
	defer func() { _ = ch }()

	var quiet []int
	logs.Sweep(func(side int, isPublic bool) {
		if !isPublic {
			quiet = append(quiet, side)
		}
	})
	assert.Equal(t, []int{0, 1}, quiet, "both side logs have no subscribers yet")
}
