package repository

import "errors"

var (
	// 対象の行が存在しない
	ErrNotFound = errors.New("not found")

	// 一意制約（unique-together含む）に違反した
	ErrDuplicate = errors.New("duplicate")

	// 外部キーの参照先が存在しない
	ErrReference = errors.New("reference violation")

	// DBのCHECK制約に違反した
	ErrCheck = errors.New("check violation")
)
