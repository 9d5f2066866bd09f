package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingObjectClone(t *testing.T) {
	tmpl := &WorkingObject{
		Prompt:      "hi",
		Attachments: []string{"a.png"},
		Vars:        map[string]string{"locale": "en"},
	}

	clone := tmpl.Clone()
	require.NotSame(t, tmpl, clone)
	assert.Equal(t, tmpl.Prompt, clone.Prompt)

	clone.Vars["locale"] = "de"
	clone.Attachments = append(clone.Attachments, "b.png")
	assert.Equal(t, "en", tmpl.Vars["locale"])
	assert.Len(t, tmpl.Attachments, 1)
}

func TestWorkingObjectCloneNil(t *testing.T) {
	var w *WorkingObject
	clone := w.Clone()
	require.NotNil(t, clone)
	require.NotNil(t, clone.Vars)
}

func TestModuleConfigAppliesTo(t *testing.T) {
	m := &ModuleConfig{Flows: []string{"discord", "cron"}}
	assert.True(t, m.AppliesTo("discord"))
	assert.False(t, m.AppliesTo("other"))

	all := &ModuleConfig{Flows: []string{"all"}}
	assert.True(t, all.AppliesTo("anything"))
}

func TestModelValidate(t *testing.T) {
	var nilModel *Model
	assert.Error(t, nilModel.Validate())
	assert.Error(t, (&Model{}).Validate())

	m := &Model{Modules: map[string]*ModuleConfig{}}
	require.NoError(t, m.Validate())
	assert.NotNil(t, m.Working, "validation fills in a default working template")
}
