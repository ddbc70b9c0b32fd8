package router

import (
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
)

// APIModule 一个可挂载的路由模块（places / users）
type APIModule interface{ MountAPI(*gin.RouterGroup) }

// 可选：实现该接口可控制挂载顺序（数值越小越先挂），不实现默认 100
type prioritizer interface{ Priority() int }

// Registry 每个引擎一份，模块注册后统一按优先级挂载
type Registry struct {
	mu   sync.Mutex
	mods []APIModule
}

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) Register(mods ...APIModule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mods = append(r.mods, mods...)
}

func (r *Registry) MountAll(api *gin.RouterGroup) {
	r.mu.Lock()
	mods := append([]APIModule(nil), r.mods...)
	r.mu.Unlock()

	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAPI(api)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
