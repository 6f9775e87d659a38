// services/locking.go
package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate okunacak satırlara FOR UPDATE kilidi uygular.
// sqlite FOR UPDATE sözdizimini tanımaz (test ortamı, tek yazar);
// orada kilitsiz devam edilir.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
