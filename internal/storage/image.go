package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Images 管理落盘的图片资源；目前只负责删除（place 删除后的释放）
type Images struct {
	root string
}

func NewImages(root string) *Images { return &Images{root: root} }

// Remove 释放一个图片引用；ref 必须落在 root 之内
func (s *Images) Remove(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return nil
	}
	p := filepath.Clean(ref)
	if !filepath.IsAbs(p) {
		p = filepath.Join(s.root, filepath.Base(p))
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return err
	}
	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(abs, rootAbs+string(filepath.Separator)) {
		return fmt.Errorf("image ref %q outside uploads dir", ref)
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
