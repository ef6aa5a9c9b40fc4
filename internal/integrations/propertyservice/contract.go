package propertyservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder счётчик исходящих запросов. Может быть nil, если метрики выключены
type MetricsRecorder interface {
	IncUpstreamRequest(operation, status string)
}
