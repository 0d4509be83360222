package logger

type LoggingDetail interface{ addTo(logEntry) }

func Field(key string, value any) LoggingDetail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(e logEntry) {
	e[f.Key] = toFieldValue(f.Value)
}

type Fields map[string]any

func (fields Fields) addTo(e logEntry) {
	for k, v := range fields {
		Field(k, v).addTo(e)
	}
}

func toFieldValue(val any) any {
	switch val := val.(type) {
	case logEntry:
		return val
	case Fields:
		le := logEntry{}
		val.addTo(le)
		return le
	case LoggingDetail:
		le := logEntry{}
		val.addTo(le)
		return le
	case []LoggingDetail:
		le := logEntry{}
		for _, v := range val {
			v.addTo(le)
		}
		return le
	case error:
		return val.Error()
	default:
		return val
	}
}

type logEntry map[string]any

func (ld logEntry) addTo(entry logEntry) { entry.Merge(ld) }

func (ld logEntry) Merge(oth logEntry) logEntry {
	for k, v := range oth {
		ld[k] = v
	}
	return ld
}
