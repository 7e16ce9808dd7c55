package catalog

// CLICommand is one entry of the terminal command reference table.
type CLICommand struct {
	ID       int
	Category string
	Command  string
	Example  string
	Notes    string
}

// CLICommands returns the Robot Framework terminal reference, grouped by
// category in display order.
func CLICommands() []CLICommand {
	return []CLICommand{
		{ID: 1, Category: "Execução Básica", Command: "robot <file>", Example: "robot tests/login.robot", Notes: "Executa um arquivo de suite"},
		{ID: 2, Category: "Execução Básica", Command: "robot <folder>", Example: "robot tests/", Notes: "Executa recursivamente arquivos .robot"},
		{ID: 3, Category: "Seleção de Testes", Command: `--test "<test name>"`, Example: `robot --test "User Can Login" tests/login.robot`, Notes: "Nome deve corresponder exatamente"},
		{ID: 4, Category: "Seleção de Testes", Command: "--suite <suite name>", Example: "robot --suite login tests/", Notes: "Suite = nome do arquivo ou diretório"},
		{ID: 5, Category: "Filtros por Tags", Command: "--include <tag>", Example: "robot --include smoke tests/", Notes: "Executa testes com essa tag"},
		{ID: 6, Category: "Filtros por Tags", Command: "--exclude <tag>", Example: "robot --exclude slow tests/", Notes: "Pula testes com essa tag"},
		{ID: 7, Category: "Configurações de Output", Command: "--output, --log, --report", Example: "robot --output results/out.xml --log results/log.html --report results/report.html tests/", Notes: "Útil em CI/CD"},
		{ID: 8, Category: "Execução Paralela", Command: "pabot --processes <n>", Example: "pabot --processes 4 tests/", Notes: "Requer pabot instalado"},
		{ID: 9, Category: "Variáveis Browser", Command: "--variable BROWSER:<value>", Example: "robot --variable BROWSER:firefox tests/", Notes: "Valores: chromium, firefox, webkit"},
		{ID: 10, Category: "Variáveis Browser", Command: "--variable HEADLESS:False", Example: "robot --variable HEADLESS:False tests/", Notes: "Padrão = True (sem interface)"},
		{ID: 11, Category: "Variáveis Customizadas", Command: "--variable NAME:value", Example: "robot --variable ENV:staging --variable USERNAME:admin tests/", Notes: "Sobrescreve variáveis no .robot"},
		{ID: 12, Category: "Debugging", Command: "--dryrun", Example: "robot --dryrun tests/", Notes: "Nenhum navegador é aberto"},
		{ID: 13, Category: "Debugging", Command: "--loglevel <level>", Example: "robot --loglevel DEBUG tests/", Notes: "Níveis: TRACE, DEBUG, INFO, WARN, ERROR"},
		{ID: 14, Category: "Debugging", Command: "--listener Browser:DEBUG", Example: "robot --listener Browser:DEBUG tests/", Notes: "Abre o Playwright Inspector"},
		{ID: 15, Category: "Seleção Avançada", Command: "--test with wildcards", Example: `robot --test "*Login*" tests/`, Notes: "Corresponde a nomes parciais"},
		{ID: 16, Category: "Combinações", Command: "(mix flags)", Example: "pabot --processes 3 --include smoke --variable ENV:qa tests/", Notes: "Comum em pipelines de CI"},
	}
}

// BrowserCommand is one keyword of the Browser library reference.
type BrowserCommand struct {
	ID          string
	Name        string
	Description string
	Syntax      string
	Notes       string
}

// BrowserCategory groups browser keywords under a titled section.
type BrowserCategory struct {
	Key      string
	Title    string
	Commands []BrowserCommand
}

// BrowserCategories returns the Browser library keyword reference.
func BrowserCategories() []BrowserCategory {
	return []BrowserCategory{
		{
			Key:   "navigation",
			Title: "Navegação",
			Commands: []BrowserCommand{
				{ID: "new-browser", Name: "New Browser", Description: "Abre uma nova instância do navegador", Syntax: "New Browser    browser=chromium    headless=False", Notes: "Suporta Chromium, Firefox e WebKit."},
				{ID: "new-page", Name: "New Page", Description: "Abre uma nova página/aba no navegador", Syntax: "New Page    url", Notes: "A página se torna o contexto ativo."},
				{ID: "go-to", Name: "Go To", Description: "Navega para uma URL na página atual", Syntax: "Go To    url", Notes: "Usa a aba atual em vez de abrir uma nova."},
				{ID: "go-back", Name: "Go Back", Description: "Volta para a página anterior no histórico", Syntax: "Go Back", Notes: "Equivale ao botão 'Voltar' do navegador."},
			},
		},
		{
			Key:   "locators",
			Title: "Localizadores",
			Commands: []BrowserCommand{
				{ID: "click", Name: "Click", Description: "Clica em um elemento da página", Syntax: "Click    selector    button=left    clickCount=1", Notes: "Aceita seletor CSS, XPath ou texto."},
				{ID: "fill-text", Name: "Fill Text", Description: "Preenche um campo de texto", Syntax: "Fill Text    selector    text", Notes: "Limpa o campo antes de preencher."},
				{ID: "get-text", Name: "Get Text", Description: "Obtém o texto de um elemento", Syntax: "Get Text    selector", Notes: "Retorna o texto visível do elemento."},
				{ID: "hover", Name: "Hover", Description: "Move o mouse sobre um elemento", Syntax: "Hover    selector", Notes: "Dispara os eventos de mouseover."},
			},
		},
		{
			Key:   "assertions",
			Title: "Verificações",
			Commands: []BrowserCommand{
				{ID: "get-title", Name: "Get Title", Description: "Obtém o título da página atual", Syntax: "Get Title    assertion_operator=equal    assertion_expected=None", Notes: "Operadores: ==, !=, contains."},
				{ID: "get-url", Name: "Get Url", Description: "Obtém a URL atual da página", Syntax: "Get Url", Notes: "Aceita os mesmos operadores de asserção."},
				{ID: "get-element-count", Name: "Get Element Count", Description: "Conta os elementos que correspondem ao seletor", Syntax: "Get Element Count    selector", Notes: "Retorna 0 quando nada corresponde."},
			},
		},
	}
}

// FindBrowserCommand resolves a keyword by id across all categories,
// returning the command and its category title.
func FindBrowserCommand(id string) (BrowserCommand, string, bool) {
	for _, category := range BrowserCategories() {
		for _, cmd := range category.Commands {
			if cmd.ID == id {
				return cmd, category.Title, true
			}
		}
	}
	return BrowserCommand{}, "", false
}
