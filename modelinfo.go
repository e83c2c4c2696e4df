package telemetry

import "github.com/modelfetch/telemetry/pkg/optional"

// ModelInfo identifies the model a download event refers to: its name and
// the content hash that fingerprints the version that was fetched.
type ModelInfo struct {
	name      string
	hash      string
	modelType ModelType
	valid     bool
}

func (m ModelInfo) Name() string         { return m.name }
func (m ModelInfo) Hash() string         { return m.hash }
func (m ModelInfo) ModelType() ModelType { return m.modelType }

// ModelInfoBuilder accumulates ModelInfo fields until Build validates them.
type ModelInfoBuilder struct {
	name      optional.Value[string]
	hash      optional.Value[string]
	modelType optional.Value[ModelType]
}

// NewModelInfoBuilder returns a builder pre-seeded with ModelTypeCustom, the
// only value the backend currently accepts.
func NewModelInfoBuilder() *ModelInfoBuilder {
	b := &ModelInfoBuilder{}
	b.modelType.Set(ModelTypeCustom)
	return b
}

func (b *ModelInfoBuilder) SetName(name string) *ModelInfoBuilder {
	b.name.Set(name)
	return b
}

func (b *ModelInfoBuilder) SetHash(hash string) *ModelInfoBuilder {
	b.hash.Set(hash)
	return b
}

// SetModelType overrides the pre-seeded model type. Callers are not expected
// to invoke it today; it exists for forward compatibility.
func (b *ModelInfoBuilder) SetModelType(modelType ModelType) *ModelInfoBuilder {
	b.modelType.Set(modelType)
	return b
}

// Build returns an immutable ModelInfo, or a *MissingFieldError when name or
// hash is unset or empty.
func (b *ModelInfoBuilder) Build() (ModelInfo, error) {
	name, ok := b.name.Get()
	if !ok || name == "" {
		return ModelInfo{}, missingField("ModelInfo", "name")
	}
	hash, ok := b.hash.Get()
	if !ok || hash == "" {
		return ModelInfo{}, missingField("ModelInfo", "hash")
	}

	return ModelInfo{
		name:      name,
		hash:      hash,
		modelType: b.modelType.Or(ModelTypeCustom),
		valid:     true,
	}, nil
}

// ModelOptions wraps the ModelInfo a download event was requested with.
type ModelOptions struct {
	modelInfo ModelInfo
	valid     bool
}

func (m ModelOptions) ModelInfo() ModelInfo { return m.modelInfo }

// ModelOptionsBuilder accumulates ModelOptions fields until Build validates
// them.
type ModelOptionsBuilder struct {
	modelInfo optional.Value[ModelInfo]
}

// NewModelOptionsBuilder returns a fresh builder with no fields set.
func NewModelOptionsBuilder() *ModelOptionsBuilder {
	return &ModelOptionsBuilder{}
}

func (b *ModelOptionsBuilder) SetModelInfo(info ModelInfo) *ModelOptionsBuilder {
	b.modelInfo.Set(info)
	return b
}

// Build returns an immutable ModelOptions, or a *MissingFieldError when the
// model info was never set.
func (b *ModelOptionsBuilder) Build() (ModelOptions, error) {
	info, ok := b.modelInfo.Get()
	if !ok {
		return ModelOptions{}, missingField("ModelOptions", "modelInfo")
	}

	return ModelOptions{modelInfo: info, valid: true}, nil
}
