package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"
)

// Service carrega e serve as traduções da API.
// Os arquivos de locale são mapas planos chave→mensagem; as chaves
// coincidem com os códigos dos erros de domínio (error.*) e mensagens
// de sucesso (msg.*).
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [idioma][chave]mensagem
	defaultLanguage string
}

// NewService cria um serviço de i18n a partir dos arquivos *.json em
// localesDir. O nome do arquivo (sem extensão) é o código do idioma.
func NewService(localesDir, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		defaultLanguage: defaultLang,
	}

	files, err := filepath.Glob(filepath.Join(localesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", localesDir)
	}

	for _, file := range files {
		lang := strings.TrimSuffix(filepath.Base(file), ".json")
		translations, err := loadLocaleFile(file)
		if err != nil {
			return nil, err
		}
		s.translations[lang] = translations
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

func loadLocaleFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", path, err)
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", path, err)
	}
	return translations, nil
}

// T traduz uma chave para o idioma especificado, com fallback para o
// idioma padrão e, por fim, para a própria chave. Parâmetros são
// interpolados como templates Go ({{.Name}} etc.).
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message := s.lookup(lang, key)
	if message == "" {
		message = s.lookup(s.defaultLanguage, key)
	}
	if message == "" {
		return key
	}

	if len(params) == 0 {
		return message
	}

	// erro de template devolve a mensagem crua, nunca vazia
	tmpl, err := template.New("msg").Parse(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}
	return buf.String()
}

func (s *Service) lookup(lang, key string) string {
	if langMap, ok := s.translations[lang]; ok {
		return langMap[key]
	}
	return ""
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	return langs
}

// IsLanguageSupported verifica se um idioma foi carregado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}
