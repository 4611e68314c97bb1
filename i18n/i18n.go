package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jeandeaual/go-locale"
)

// LangEnv overrides the detected language.
const LangEnv = "BREAKTIMER_LANG"

var (
	mu   sync.RWMutex
	lang string
)

var supported = []string{"pt", "es", "ru"}

var translations = map[string]map[string]string{
	"Notification Timer": {
		"pt": "Temporizador de Notificações",
		"es": "Temporizador de Notificaciones",
		"ru": "Таймер уведомлений",
	},
	"Start Notifications": {
		"pt": "Iniciar Notificações",
		"es": "Iniciar Notificaciones",
		"ru": "Включить уведомления",
	},
	"Stop Notifications": {
		"pt": "Parar Notificações",
		"es": "Detener Notificaciones",
		"ru": "Выключить уведомления",
	},
	`Click "Start" to begin.`: {
		"pt": `Clique em "Iniciar" para começar.`,
		"es": `Haz clic en "Iniciar" para comenzar.`,
		"ru": `Нажмите «Включить», чтобы начать.`,
	},
	"Notifications are active. I will notify you every %s.": {
		"pt": "Notificações ativas. Vou avisar você a cada %s.",
		"es": "Notificaciones activas. Te avisaré cada %s.",
		"ru": "Уведомления включены. Я буду напоминать каждые %s.",
	},
	`Notifications stopped. Click "Start" to restart.`: {
		"pt": `Notificações paradas. Clique em "Iniciar" para recomeçar.`,
		"es": `Notificaciones detenidas. Haz clic en "Iniciar" para reanudar.`,
		"ru": `Уведомления выключены. Нажмите «Включить», чтобы продолжить.`,
	},
	"Notifications not supported on this system.": {
		"pt": "Notificações não são suportadas neste sistema.",
		"es": "Las notificaciones no son compatibles con este sistema.",
		"ru": "Уведомления не поддерживаются в этой системе.",
	},
	"Notification Timer Activated": {
		"pt": "Temporizador Ativado",
		"es": "Temporizador Activado",
		"ru": "Таймер включён",
	},
	"The %s timer has started.": {
		"pt": "O temporizador de %s foi iniciado.",
		"es": "El temporizador de %s ha comenzado.",
		"ru": "Таймер на %s запущен.",
	},
	"Notification Timer Deactivated": {
		"pt": "Temporizador Desativado",
		"es": "Temporizador Desactivado",
		"ru": "Таймер выключен",
	},
	"The %s timer has been stopped.": {
		"pt": "O temporizador de %s foi parado.",
		"es": "El temporizador de %s se ha detenido.",
		"ru": "Таймер на %s остановлен.",
	},
	"Time to take a break!": {
		"pt": "Hora de fazer uma pausa!",
		"es": "¡Hora de tomar un descanso!",
		"ru": "Пора сделать перерыв!",
	},
	"It has been %s since you started the timer.": {
		"pt": "Já se passaram %s desde que você iniciou o temporizador.",
		"es": "Han pasado %s desde que iniciaste el temporizador.",
		"ru": "Прошло %s с момента запуска таймера.",
	},
	"Next reminder at %s": {
		"pt": "Próximo lembrete às %s",
		"es": "Próximo recordatorio a las %s",
		"ru": "Следующее напоминание в %s",
	},
	"Allow notifications": {
		"pt": "Permitir notificações",
		"es": "Permitir notificaciones",
		"ru": "Разрешить уведомления",
	},
	"Allow BreakTimer to show desktop notifications?": {
		"pt": "Permitir que o BreakTimer mostre notificações na área de trabalho?",
		"es": "¿Permitir que BreakTimer muestre notificaciones de escritorio?",
		"ru": "Разрешить BreakTimer показывать уведомления на рабочем столе?",
	},
	"Show": {
		"pt": "Mostrar",
		"es": "Mostrar",
		"ru": "Показать",
	},
	"Quit": {
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
	},
	"minute":  {"pt": "minuto", "es": "minuto", "ru": "минута"},
	"minutes": {"pt": "minutos", "es": "minutos", "ru": "минут"},
	"hour":    {"pt": "hora", "es": "hora", "ru": "час"},
	"hours":   {"pt": "horas", "es": "horas", "ru": "часов"},
	"second":  {"pt": "segundo", "es": "segundo", "ru": "секунда"},
	"seconds": {"pt": "segundos", "es": "segundos", "ru": "секунд"},
}

func init() {
	SetLang(detect())
}

func detect() string {
	if forcedLang := strings.TrimSpace(os.Getenv(LangEnv)); forcedLang != "" {
		log.Debug("language forced by environment", "env", LangEnv, "lang", forcedLang)
		return forcedLang
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Debug("could not get user locale, defaulting to english", "err", err)
		return "en"
	}
	if len(userLocales) == 0 {
		log.Debug("no user locale detected, defaulting to english")
		return "en"
	}
	log.Debug("detected user locale", "locale", userLocales[0])
	return userLocales[0]
}

// SetLang selects the active language from a locale such as "pt_BR" or
// "es-ES". Anything unsupported falls back to English.
func SetLang(code string) {
	code = strings.ToLower(strings.TrimSpace(code))
	resolved := "en"
	for _, l := range supported {
		if strings.HasPrefix(code, l) {
			resolved = l
			break
		}
	}

	mu.Lock()
	lang = resolved
	mu.Unlock()
}

// T returns the translation of key, or key itself.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

// Tf translates a format string and applies args to it.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}
