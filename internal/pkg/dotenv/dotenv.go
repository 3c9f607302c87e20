package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подхватывает .env из рабочей директории, если он есть, и применяет флаг -port.
// loaded false, когда файла нет: конфигурация берётся из окружения.
func Load(filenames ...string) (loaded bool, err error) {
	err = godotenv.Load(filenames...)
	switch {
	case err == nil:
		loaded = true
	case errors.Is(err, fs.ErrNotExist):
	default:
		return false, fmt.Errorf("load .env: %w", err)
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return loaded, fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return loaded, nil
}
