package utils

import (
	"fmt"

	"github.com/Govind-619/EstateSphere/models"
	"gorm.io/gorm"
)

// NextReference advances the named counter and returns the formatted reference,
// e.g. EST-000042. The increment is a single UPDATE so concurrent callers never
// hand out the same number inside one database.
func NextReference(tx *gorm.DB, name, prefix string) (string, error) {
	seq := models.Sequence{Name: name}
	if err := tx.Where(models.Sequence{Name: name}).FirstOrCreate(&seq).Error; err != nil {
		return "", WrapError(err, "failed to load sequence")
	}

	if err := tx.Model(&models.Sequence{}).Where("name = ?", name).
		UpdateColumn("value", gorm.Expr("value + 1")).Error; err != nil {
		return "", WrapError(err, "failed to advance sequence")
	}

	if err := tx.Where("name = ?", name).First(&seq).Error; err != nil {
		return "", WrapError(err, "failed to read sequence")
	}

	return fmt.Sprintf("%s-%06d", prefix, seq.Value), nil
}
