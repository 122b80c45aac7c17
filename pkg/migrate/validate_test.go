package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AllCovered(t *testing.T) {
	pairs := []MovedPair{
		{From: "a", To: "module.baseline_unified[0].aws_iam_role.ntc_config"},
		{From: "b", To: "module.baseline_unified[0].aws_kms_key.ntc_state_encryption[0]"},
	}
	actual := []string{
		"module.baseline_unified[0].aws_iam_role.ntc_config",
		"module.baseline_unified[0].aws_kms_key.ntc_state_encryption[0]",
	}

	assert.Empty(t, Validate(pairs, actual))
}

func TestValidate_MissingInActual(t *testing.T) {
	pairs := []MovedPair{
		{From: "a", To: "module.baseline_unified[0].aws_iam_role.ntc_config"},
	}

	issues := Validate(pairs, nil)

	require.Len(t, issues, 1)
	assert.Equal(t, MissingInActual, issues[0].Kind)
	assert.Equal(t, "module.baseline_unified[0].aws_iam_role.ntc_config", issues[0].Address)
}

func TestValidate_NotCovered(t *testing.T) {
	actual := []string{"module.baseline_unified[0].aws_s3_bucket.ntc_logs"}

	issues := Validate(nil, actual)

	require.Len(t, issues, 1)
	assert.Equal(t, NotCovered, issues[0].Kind)
	assert.Equal(t, "module.baseline_unified[0].aws_s3_bucket.ntc_logs", issues[0].Address)
}

func TestValidate_StableOrder(t *testing.T) {
	pairs := []MovedPair{
		{From: "a", To: "to_b"},
		{From: "b", To: "to_a"},
	}
	actual := []string{"extra_z", "extra_a"}

	issues := Validate(pairs, actual)

	require.Len(t, issues, 4)
	// pairs in input order first, then actual entries in input order
	assert.Equal(t, Issue{Kind: MissingInActual, Address: "to_b"}, issues[0])
	assert.Equal(t, Issue{Kind: MissingInActual, Address: "to_a"}, issues[1])
	assert.Equal(t, Issue{Kind: NotCovered, Address: "extra_z"}, issues[2])
	assert.Equal(t, Issue{Kind: NotCovered, Address: "extra_a"}, issues[3])
}

func TestValidate_DuplicatesReportedOnce(t *testing.T) {
	pairs := []MovedPair{
		{From: "a1", To: "to_a"},
		{From: "a2", To: "to_a"},
	}

	issues := Validate(pairs, nil)

	require.Len(t, issues, 1)
	assert.Equal(t, "to_a", issues[0].Address)
}

func TestIssueKindString(t *testing.T) {
	assert.Equal(t, "MISSING_IN_ACTUAL", MissingInActual.String())
	assert.Equal(t, "NOT_COVERED", NotCovered.String())
}
