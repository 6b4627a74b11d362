// Package timezone определяет часовой пояс салона с цепочкой фолбэков.
// Вычисляется один раз при старте и кешируется на всё время жизни процесса.
package timezone

import (
	"fmt"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Load пробует по порядку: основной IANA идентификатор, затем фолбэки,
// затем фиксированное смещение от UTC. Каждый промах логируется как
// предупреждение; отсутствие базы часовых поясов не фатально.
func Load(primary string, fallbacks []string, fixedOffsetHours int, log Logger) *time.Location {
	candidates := append([]string{primary}, fallbacks...)

	for _, name := range candidates {
		if name == "" {
			continue
		}
		loc, err := time.LoadLocation(name)
		if err == nil {
			return loc
		}
		log.Warn("timezone %q not available: %v", name, err)
	}

	log.Warn("no timezone database entry found, using fixed UTC%+d offset", fixedOffsetHours)
	return time.FixedZone(fmt.Sprintf("UTC%+d", fixedOffsetHours), fixedOffsetHours*3600)
}
