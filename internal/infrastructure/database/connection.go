package database

import (
	"fmt"
	"net/url"
	"regexp"
	"time"
)

// mesmo padrão que o driver postgres do GORM usa para achar o fuso na DSN
var timeZoneParam = regexp.MustCompile(`(time_zone|TimeZone)=`)

// WithTimeZone acrescenta o fuso da clínica à DSN. O driver envia o parâmetro na abertura de
// cada conexão do pool, então toda sessão do Postgres usa o mesmo fuso.
// Uma DSN que já define TimeZone é mantida.
func WithTimeZone(dsn, timezone string) (string, error) {
	if _, err := time.LoadLocation(timezone); err != nil {
		return "", fmt.Errorf("timezone inválido %q: %w", timezone, err)
	}
	if timeZoneParam.MatchString(dsn) {
		return dsn, nil
	}

	if u, err := url.Parse(dsn); err == nil && (u.Scheme == "postgres" || u.Scheme == "postgresql") {
		q := u.Query()
		q.Set("TimeZone", timezone)
		u.RawQuery = q.Encode()
		return u.String(), nil
	}

	// formato chave=valor
	return dsn + " TimeZone=" + timezone, nil
}
