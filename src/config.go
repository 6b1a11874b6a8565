package src

import (
	"bufio"
	"io"
	"os"
	"reflect"
	"simple-lists/utils"
	"strconv"
	"strings"
)

type configVal struct {
	Prompt      string `cfg:"prompt"`
	ClearScreen bool   `cfg:"clearScreen"`
	History     string `cfg:"history"`
	HistoryMax  int    `cfg:"historyMax"`
	Format      string `cfg:"format"`
	LogLevel    int    `cfg:"logLevel"`
}

func defaultConfig() *configVal {
	return &configVal{
		Prompt:      DEFAULT_PROMPT,
		ClearScreen: true,
		History:     DEFAULT_HISTORY,
		HistoryMax:  DEFAULT_HISTORY_MAX,
		Format:      FORMAT_TEXT,
		LogLevel:    utils.ErrorLevel,
	}
}

// loadConfig reads confName over the defaults. A missing file is only an
// error when required is set.
func loadConfig(confName string, required bool) (*configVal, error) {
	f, err := os.Open(confName)
	if err != nil {
		if !required && os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return parse(f), nil
}

func parse(r io.Reader) *configVal {
	conf := defaultConfig()
	scanner := bufio.NewScanner(r)
	rawMap := make(map[string]string)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lLen := len(line) // len for line

		if lLen == 0 || line[0] == '#' {
			continue
		}
		firstIdx := strings.IndexAny(line, " ")
		if firstIdx > 0 && firstIdx < lLen-1 {
			rawMap[strings.ToLower(line[0:firstIdx])] = strings.Trim(line[firstIdx+1:], " ")
		}
	}

	confType := reflect.TypeOf(conf)
	confValue := reflect.ValueOf(conf)

	for i := 0; i < confType.Elem().NumField(); i++ {
		field := confType.Elem().Field(i)
		fieldVal := confValue.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")

		if !ok {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]

		if ok {
			switch field.Type.Kind() {
			case reflect.String:
				fieldVal.SetString(strings.Trim(value, "\""))
			case reflect.Int, reflect.Int64:
				intVal, err := strconv.ParseInt(value, 10, 64)
				if err == nil {
					fieldVal.SetInt(intVal)
				}
			case reflect.Bool:
				boolVal := "yes" == value
				fieldVal.SetBool(boolVal)
			}
		}
	}
	if conf.Format != FORMAT_JSON {
		conf.Format = FORMAT_TEXT
	}
	return conf
}
