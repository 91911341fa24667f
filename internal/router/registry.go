package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	Logger      logrus.FieldLogger
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine, logger logrus.FieldLogger) *Registry {
	api := engine.Group("/api")
	return &Registry{Engine: engine, API: api, Logger: logger}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
		if r.Logger != nil {
			r.Logger.WithField("module", m.Name()).Debug("module registered")
		}
	}
}
