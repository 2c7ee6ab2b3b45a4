// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/folio-cli/folio/color"
	"github.com/folio-cli/folio/constant"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Folio + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.ContentSource, "sanity", "Content backend to read media from.\nEither \"sanity\" or the name of a Lua source.\nType \"folio sources list\" to show available sources")
	register(key.ContentRevalidate, 60, "Seconds a fetched content tag stays fresh before it is refetched")
	register(key.SanityProject, "", "Sanity project id")
	register(key.SanityDataset, "production", "Sanity dataset")
	register(key.SanityAPIVersion, "2024-01-01", "Sanity API version date")
	register(key.SanityUseCDN, true, "Query the Sanity API CDN instead of the live API")
	register(key.PreloadTimeout, 10, "Seconds to wait for a single media preload")
	register(key.PreloadConcurrency, 4, "Maximum number of concurrent preloads when warming")
	register(key.ServerAddr, ":8080", "Address the web server listens on")
	register(key.ServerH2C, false, "Serve HTTP/2 over cleartext (h2c)")
	register(key.ServerSite, "Josh Gutie", "Site owner name shown in titles and the splash")
	register(key.ContactEndpoint, "", "Webhook URL contact messages are POSTed to.\nMessages are stored in the local inbox if empty")
	register(key.ContactFallback, "joshgutie01@gmail.com", "Address shown when a contact submission fails")
	register(key.ContactResetDelay, 5, "Seconds the contact status is shown before returning to idle")
	register(key.SplashEnable, true, "Show the splash screen once per session")
	register(key.SplashSession, 12, "Hours a session lasts for the splash screen")
	register(key.SplashTitle, "Josh Gutie", "Text revealed by the splash screen")
	register(key.GridInitial, 18, "Items shown in a grid before loading more")
	register(key.GridStep, 6, "Items added to a grid per load")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares, nerd (nerd-font required)")
	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.TUIShowURLs, true, "Show URLs under list items")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
