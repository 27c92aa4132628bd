package storage

import (
	"context"
	"errors"

	"github.com/dmitrymomot/reqdata/pkg/content"
)

// PutFiles stores several files with the same options.
// On failure the files stored so far are deleted before the error is returned.
func PutFiles(ctx context.Context, s Storage, files []content.File, opts ...Option) ([]*FileInfo, error) {
	infos := make([]*FileInfo, 0, len(files))
	for _, f := range files {
		info, err := s.Put(ctx, f, opts...)
		if err != nil {
			for _, stored := range infos {
				if delErr := s.Delete(ctx, stored.Key); delErr != nil {
					err = errors.Join(err, delErr)
				}
			}
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// PutNode stores the uploaded file(s) held by a content node.
// Returns ErrNotAFile unless n is a MultiPart file or files field.
func PutNode(ctx context.Context, s Storage, n content.Node, opts ...Option) ([]*FileInfo, error) {
	mp, ok := n.(content.MultiPart)
	if !ok {
		return nil, ErrNotAFile
	}

	switch mp.Kind() {
	case content.KindFile:
		f, _ := mp.File()
		info, err := s.Put(ctx, f, opts...)
		if err != nil {
			return nil, err
		}
		return []*FileInfo{info}, nil
	case content.KindFiles:
		files, _ := mp.Files()
		return PutFiles(ctx, s, files, opts...)
	}
	return nil, ErrNotAFile
}
