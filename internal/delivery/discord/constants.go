package discord

const (
	platform = "discord"

	maxMessageLength = 2000

	// Slash commands
	slashArgsOption      = "args"
	slashArgsDescription = "Arguments de la commande"
	slashNameMaxLength   = 32

	msgUnknownCommand = "Commande inconnue."
	msgDone           = "Terminé."
)
