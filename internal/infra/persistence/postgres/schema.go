package postgres

import (
	"context"
	"log/slog"
	"slices"

	"loyalty/internal/domain/constants"
	"loyalty/internal/errors"
	"loyalty/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// registrationPointsCheck keeps a registration balance from going negative.
const registrationPointsCheck = "chk_registrations_points_non_negative"

// giftPrimaryKey allows one gift per client and partnership.
var giftPrimaryKey = []string{"client_id", "gift_key"}

const primaryKeyColumnsQuery = `
SELECT kcu.column_name
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
  ON kcu.constraint_name = tc.constraint_name
 AND kcu.table_schema = tc.table_schema
 AND kcu.table_name = tc.table_name
WHERE tc.constraint_type = 'PRIMARY KEY'
  AND tc.table_schema = current_schema()
  AND tc.table_name = ?
ORDER BY kcu.ordinal_position`

// loyaltyModels lists every table the repositories read or write.
func loyaltyModels() []any {
	return []any{
		&model.ShopModel{},
		&model.ShopTagModel{},
		&model.RewardDefinitionModel{},
		&model.ClientModel{},
		&model.ClientDeviceModel{},
		&model.RegistrationModel{},
		&model.PartnerLinkModel{},
		&model.GiftModel{},
		&model.RedemptionModel{},
		&model.VisitModel{},
	}
}

// ensureSchema applies the configured schema mode. Migrate creates missing
// tables and constraints, then both migrate and verify check that the
// constraints the ledger depends on are in place.
func ensureSchema(ctx context.Context, db *gorm.DB, mode string, logger *slog.Logger) error {
	switch mode {
	case constants.SchemaModeOff:
		return nil
	case constants.SchemaModeMigrate:
		if err := db.WithContext(ctx).AutoMigrate(loyaltyModels()...); err != nil {
			return errors.Wrap(err, "failed to migrate loyalty schema")
		}
		logger.InfoContext(ctx, "[Store] Loyalty schema migrated")
	case constants.SchemaModeVerify, "":
	default:
		return errors.Errorf("unsupported schema mode: %s", mode)
	}

	if err := verifySchema(ctx, db); err != nil {
		return err
	}
	logger.InfoContext(ctx, "[Store] Loyalty schema verified")

	return nil
}

func verifySchema(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	migrator := tx.Migrator()

	for _, m := range loyaltyModels() {
		if !migrator.HasTable(m) {
			return errors.Errorf("loyalty schema is missing the table of %T", m)
		}
	}

	if !migrator.HasConstraint(&model.RegistrationModel{}, registrationPointsCheck) {
		return errors.Errorf("registrations is missing check constraint %s", registrationPointsCheck)
	}

	columns, err := primaryKeyColumns(tx, model.GiftModel{}.TableName())
	if err != nil {
		return err
	}
	if !slices.Equal(columns, giftPrimaryKey) {
		return errors.Errorf("gifts primary key is %v, want %v", columns, giftPrimaryKey)
	}

	return nil
}

func primaryKeyColumns(tx *gorm.DB, table string) ([]string, error) {
	rows, err := tx.Raw(primaryKeyColumnsQuery, table).Rows()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read primary key of %s", table)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var column string
		if err := rows.Scan(&column); err != nil {
			return nil, errors.Wrapf(err, "failed to read primary key of %s", table)
		}
		columns = append(columns, column)
	}

	return columns, errors.WithStack(rows.Err())
}
