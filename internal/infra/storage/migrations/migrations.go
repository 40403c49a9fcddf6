package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/m04kA/SMC-ClinicScheduling/pkg/dbmetrics"
)

//go:embed *.sql
var files embed.FS

// ErrMigration возвращается, когда схему не удалось применить
var ErrMigration = errors.New("migrations: failed to apply schema")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Names возвращает имена файлов схемы в порядке применения
func Names() ([]string, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("%w: list files: %v", ErrMigration, err)
	}
	sort.Strings(names)
	return names, nil
}

// Apply выполняет все файлы схемы по порядку.
// Файлы идемпотентны (IF NOT EXISTS), повторный запуск ничего не меняет.
func Apply(ctx context.Context, db dbmetrics.DBExecutor, logger Logger) error {
	names, err := Names()
	if err != nil {
		return err
	}

	for _, name := range names {
		body, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("%w: read %s: %v", ErrMigration, name, err)
		}

		if _, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMigration, name, err)
		}
		logger.Info("Migrate: applied %s", name)
	}

	return nil
}
