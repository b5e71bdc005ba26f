package scene

import (
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

const PathSphere = "Models/Sphere.mdl"

var ErrResourceNotFound = errors.New("resource not found")

var builtinModels = map[string]func() *Model{
	PathSphere: func() *Model {
		return NewSphereModel(PathSphere, 0.5, 64, 32)
	},
}

// ResourceCache resolves resources by their path. Built-in models are created on
// first use and kept in an lru cache. Manually added resources stay until removed.
type ResourceCache struct {
	models *lru.Cache[string, *Model]
	manual map[string]*Model
}

func NewResourceCache() *ResourceCache {
	models, _ := lru.New[string, *Model](32)

	return &ResourceCache{
		models: models,
		manual: map[string]*Model{},
	}
}

// AddModel registers a model under the given path, shadowing built-in models.
func (r *ResourceCache) AddModel(path string, model *Model) {
	r.manual[path] = model
}

func (r *ResourceCache) RemoveModel(path string) {
	delete(r.manual, path)
	r.models.Remove(path)
}

func (r *ResourceCache) GetModel(path string) (*Model, error) {
	if model, ok := r.manual[path]; ok {
		return model, nil
	}

	if model, ok := r.models.Get(path); ok {
		return model, nil
	}

	build, ok := builtinModels[path]
	if !ok {
		return nil, fmt.Errorf("get model %q: %w", path, ErrResourceNotFound)
	}

	model := build()

	slog.Debug(
		"Built model",
		slog.String("path", path),
		slog.Int("vertices", len(model.Vertices)),
		slog.Int("indices", len(model.Indices)),
	)

	r.models.Add(path, model)

	return model, nil
}
