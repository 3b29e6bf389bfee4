package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksanderv/transitquery/internal/schedule"
)

func TestLoadAppliesEnvironmentOverTheDefaults(t *testing.T) {
	t.Setenv("TRANSITQUERY_DATASET_PATH", "/data/feed")
	t.Setenv("TRANSITQUERY_MAX_SEARCH_TIME_HOURS", "48")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/data/feed", cfg.DatasetPath)
	assert.Equal(t, 48.0, cfg.MaxSearchTimeHours)
	assert.Equal(t, schedule.TransferByParentStation, cfg.Transfer.Mode)
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("TRANSITQUERY_DATASET_PATH", "/data/env-feed")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("dataset-path", "", "")
	require.NoError(t, fs.Set("dataset-path", "/data/flag-feed"))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "/data/flag-feed", cfg.DatasetPath)
}

func TestLoadRejectsUnknownTransferMode(t *testing.T) {
	t.Setenv("TRANSITQUERY_DATASET_PATH", "/data/feed")
	t.Setenv("TRANSITQUERY_TRANSFER_MODE", "teleport")

	_, err := Load(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadRejectsNonPositiveHorizon(t *testing.T) {
	t.Setenv("TRANSITQUERY_DATASET_PATH", "/data/feed")
	t.Setenv("TRANSITQUERY_MAX_SEARCH_TIME_HOURS", "0")

	_, err := Load(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadRequiresNodeIDColumnForNodeIDMode(t *testing.T) {
	t.Setenv("TRANSITQUERY_DATASET_PATH", "/data/feed")
	t.Setenv("TRANSITQUERY_TRANSFER_MODE", "by_node_id")

	_, err := Load(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)

	t.Setenv("TRANSITQUERY_TRANSFER_NODE_ID", "node_group")
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, schedule.TransferByNodeID, cfg.Transfer.Mode)
	assert.Equal(t, "node_group", cfg.Transfer.NodeIDColumn)
}

func TestLoadRejectsMissingDatasetPath(t *testing.T) {
	_, err := Load(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}
