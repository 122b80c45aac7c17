package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate_IndexRemoved(t *testing.T) {
	addr := mustParse(t, "module.baseline_eu_central_1[0].aws_iam_role.ntc_config[0]")

	pair := Translate(addr, Classification{Case: GlobalIndexRemoved}, "")

	assert.Equal(t, "module.baseline_eu_central_1[0].aws_iam_role.ntc_config[0]", pair.From)
	assert.Equal(t, "module.baseline_unified[0].aws_iam_role.ntc_config", pair.To)
}

func TestTranslate_IndexKept(t *testing.T) {
	addr := mustParse(t, "module.baseline_eu_central_1[0].aws_kms_key.ntc_state_encryption[0]")

	pair := Translate(addr, Classification{Case: GlobalIndexKept}, "")

	assert.Equal(t, "module.baseline_unified[0].aws_kms_key.ntc_state_encryption[0]", pair.To)
}

func TestTranslate_IndexKept_NoIndexInSource(t *testing.T) {
	addr := mustParse(t, "module.baseline_eu_central_1[0].aws_kms_key.ntc_state_encryption")

	pair := Translate(addr, Classification{Case: GlobalIndexKept}, "")

	assert.Equal(t, "module.baseline_unified[0].aws_kms_key.ntc_state_encryption", pair.To)
}

func TestTranslate_RegionalKeyed(t *testing.T) {
	addr := mustParse(t, "module.baseline_us_east_1[0].aws_config_configuration_recorder.ntc_config")

	pair := Translate(addr, Classification{Case: RegionalKeyed}, "")

	assert.Equal(t, `module.baseline_unified[0].aws_config_configuration_recorder.ntc_config["us-east-1"]`, pair.To)
}

func TestTranslate_CustomUnifiedModule(t *testing.T) {
	addr := mustParse(t, "module.baseline_eu_central_1[0].aws_iam_role.ntc_config[0]")

	pair := Translate(addr, Classification{Case: GlobalIndexRemoved}, "baseline_v2")

	assert.Equal(t, "module.baseline_v2[0].aws_iam_role.ntc_config", pair.To)
}
