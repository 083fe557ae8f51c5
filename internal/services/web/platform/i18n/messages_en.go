package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Brand
	message.SetString(lang, "brand.name", "Custom Clearance")
	message.SetString(lang, "brand.mark", "C")
	message.SetString(lang, "brand.home", "Go to home")

	// Dashboard shell
	message.SetString(lang, "title.dashboard", "Customs Clearance Wizard")
	message.SetString(lang, "title.documents", "Documents")
	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.documents", "Documents")
	message.SetString(lang, "nav.ai_assistant", "AI Assistant")
	message.SetString(lang, "auth.prompt_before", "Please")
	message.SetString(lang, "auth.prompt_link", "log in")
	message.SetString(lang, "auth.prompt_after", "to use the dashboard.")
	message.SetString(lang, "pending.loading", "Checking your session...")

	// User menu
	message.SetString(lang, "menu.avatar_alt", "User")
	message.SetString(lang, "menu.toggle", "Toggle user menu")
	message.SetString(lang, "menu.logout", "Logout")

	// Widgets
	message.SetString(lang, "widgets.recent_documents", "Recent Documents")
	message.SetString(lang, "widgets.status_ok", "OK")
	message.SetString(lang, "widgets.status_err", "Error")
	message.SetString(lang, "widgets.ask_ai", "Ask AI")
	message.SetString(lang, "widgets.ask_ai_prompt", "\"EU food export rules?\"")
	message.SetString(lang, "widgets.chat_now", "Chat Now")

	// Trade lane
	message.SetString(lang, "tradelane.title", "Trade Lane")
	message.SetString(lang, "tradelane.subtitle", "Plan the customs route for your next shipment.")
	message.SetString(lang, "tradelane.show_wizard", "Start Clearance Wizard")
	message.SetString(lang, "tradelane.hide_wizard", "Hide Wizard")
	message.SetString(lang, "tradelane.wizard_loading", "Loading clearance wizard...")

	// Documents
	message.SetString(lang, "documents.heading", "Documents")
	message.SetString(lang, "documents.empty", "No documents to show yet.")

	// Public pages
	message.SetString(lang, "title.landing", "Custom Clearance")
	message.SetString(lang, "landing.tagline", "Customs clearance paperwork for cross-border trade.")
	message.SetString(lang, "landing.open_dashboard", "Open dashboard")
	message.SetString(lang, "landing.sign_in", "Sign in")
	message.SetString(lang, "title.login", "Sign In")
	message.SetString(lang, "login.heading", "Sign in to continue")
	message.SetString(lang, "login.continue", "Continue with your identity provider")
	message.SetString(lang, "login.unconfigured", "Sign-in is not configured for this deployment.")

	// Errors
	message.SetString(lang, "web.error.page_title_not_found", "Page not found")
	message.SetString(lang, "web.error.page_title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.message_not_found", "The page you requested could not be found.")
	message.SetString(lang, "web.error.message_server_error", "An unexpected error occurred. Please try again.")
	message.SetString(lang, "web.error.action_back_to_dashboard", "Back to dashboard")
	message.SetString(lang, "error.web.message.logout_failed", "Logout failed.")
	message.SetString(lang, "error.web.message.invalid_login_token", "The sign-in link is invalid or expired.")
}
