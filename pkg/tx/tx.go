package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager транзакции поверх go-transaction-manager. Querier подхватывает
// транзакцию из контекста через pgxv5.CtxGetter.
type Manager struct {
	internal *manager.Manager
	settings pgxv5.Settings
}

// New правки зон точечные (чтение строки и UPDATE по id), read committed достаточно.
func New(db pgxv5.Transactional) *Manager {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}),
	)
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		settings: txSettings,
	}
}

// Do выполняет fn в транзакции; вложенный Do присоединяется к внешней.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.internal.DoWithSettings(ctx, m.settings, fn)
}
