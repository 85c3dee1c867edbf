package api

import (
	"github.com/JFRG28/money-monitor-vWeb/config"
)

// SafeErrorMessage en modo release no expone detalles internos al cliente
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
