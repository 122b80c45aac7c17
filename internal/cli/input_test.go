package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAddressLines_StripsBlanksAndComments(t *testing.T) {
	input := strings.NewReader(`
# legacy export 2026-08-12
module.baseline_eu_central_1[0].aws_iam_role.ntc_config[0]

  # indented comment
  module.baseline_us_east_1[0].aws_s3_bucket.ntc_logs
`)

	lines, err := readAddressLines(input)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"module.baseline_eu_central_1[0].aws_iam_role.ntc_config[0]",
		"module.baseline_us_east_1[0].aws_s3_bucket.ntc_logs",
	}, lines)
}

func TestReadAddressLines_Empty(t *testing.T) {
	lines, err := readAddressLines(strings.NewReader("# only a comment\n\n"))

	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestDropDataSources(t *testing.T) {
	in := []string{
		"module.baseline_unified[0].aws_iam_role.ntc_config",
		"module.baseline_unified[0].data.aws_iam_policy_document.ntc_config",
		"data.aws_caller_identity.current",
	}

	assert.Equal(t, []string{"module.baseline_unified[0].aws_iam_role.ntc_config"}, dropDataSources(in))
}
