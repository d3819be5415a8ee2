package repository

import (
	infradb "backoffice/internal/infra/db"
	repo "backoffice/internal/repository"

	"gorm.io/gorm"
)

func translate(err error) error {
	return infradb.TranslateError(err)
}

// 更新・削除の結果をまとめて判定（0件ならErrNotFound）
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
