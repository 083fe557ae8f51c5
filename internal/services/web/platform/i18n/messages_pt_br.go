package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	// Brand
	message.SetString(lang, "brand.name", "Custom Clearance")
	message.SetString(lang, "brand.mark", "C")
	message.SetString(lang, "brand.home", "Ir para o início")

	// Dashboard shell
	message.SetString(lang, "title.dashboard", "Assistente de Desembaraço Aduaneiro")
	message.SetString(lang, "title.documents", "Documentos")
	message.SetString(lang, "nav.dashboard", "Painel")
	message.SetString(lang, "nav.documents", "Documentos")
	message.SetString(lang, "nav.ai_assistant", "Assistente de IA")
	message.SetString(lang, "auth.prompt_before", "Por favor,")
	message.SetString(lang, "auth.prompt_link", "entre")
	message.SetString(lang, "auth.prompt_after", "para usar o painel.")
	message.SetString(lang, "pending.loading", "Verificando sua sessão...")

	// User menu
	message.SetString(lang, "menu.avatar_alt", "Usuário")
	message.SetString(lang, "menu.toggle", "Alternar menu do usuário")
	message.SetString(lang, "menu.logout", "Sair")

	// Widgets
	message.SetString(lang, "widgets.recent_documents", "Documentos Recentes")
	message.SetString(lang, "widgets.status_ok", "OK")
	message.SetString(lang, "widgets.status_err", "Erro")
	message.SetString(lang, "widgets.ask_ai", "Pergunte à IA")
	message.SetString(lang, "widgets.ask_ai_prompt", "\"Regras de exportação de alimentos para a UE?\"")
	message.SetString(lang, "widgets.chat_now", "Conversar")

	// Trade lane
	message.SetString(lang, "tradelane.title", "Rota Comercial")
	message.SetString(lang, "tradelane.subtitle", "Planeje a rota aduaneira do seu próximo envio.")
	message.SetString(lang, "tradelane.show_wizard", "Iniciar Assistente de Desembaraço")
	message.SetString(lang, "tradelane.hide_wizard", "Ocultar Assistente")
	message.SetString(lang, "tradelane.wizard_loading", "Carregando assistente de desembaraço...")

	// Documents
	message.SetString(lang, "documents.heading", "Documentos")
	message.SetString(lang, "documents.empty", "Nenhum documento para mostrar ainda.")

	// Public pages
	message.SetString(lang, "title.landing", "Custom Clearance")
	message.SetString(lang, "landing.tagline", "Documentação de desembaraço aduaneiro para o comércio exterior.")
	message.SetString(lang, "landing.open_dashboard", "Abrir painel")
	message.SetString(lang, "landing.sign_in", "Entrar")
	message.SetString(lang, "title.login", "Entrar")
	message.SetString(lang, "login.heading", "Entre para continuar")
	message.SetString(lang, "login.continue", "Continuar com seu provedor de identidade")
	message.SetString(lang, "login.unconfigured", "O login não está configurado nesta instalação.")

	// Errors
	message.SetString(lang, "web.error.page_title_not_found", "Página não encontrada")
	message.SetString(lang, "web.error.page_title_server_error", "Algo deu errado")
	message.SetString(lang, "web.error.message_not_found", "A página solicitada não foi encontrada.")
	message.SetString(lang, "web.error.message_server_error", "Ocorreu um erro inesperado. Tente novamente.")
	message.SetString(lang, "web.error.action_back_to_dashboard", "Voltar ao painel")
	message.SetString(lang, "error.web.message.logout_failed", "Falha ao sair.")
	message.SetString(lang, "error.web.message.invalid_login_token", "O link de login é inválido ou expirou.")
}
