package commands

import "time"

const (
	defaultPrefix         = "!"
	defaultCommandTimeout = 30 * time.Second
	usageRecordTimeout    = 5 * time.Second

	// User-facing messages
	msgFetchFailed     = "Erreur lors de la récupération des données."
	msgPlayerNotFound  = "Joueur introuvable."
	msgNoSeasons       = "Aucune saison disponible pour ce joueur."
	msgMonsterNotFound = "Monstre introuvable."
	msgNotOwner        = "Vous n'avez pas la permission d'utiliser cette commande."
	msgUnknownGroup    = "Groupe inconnu: `%s`."
	msgReloaded        = "Groupe `%s` rechargé."
	msgReloadFailed    = "Échec du rechargement de `%s`, l'ancienne version reste active."
	msgUsage           = "Usage: `%s%s`"
	msgInvalidID       = "Identifiant invalide: `%s`."
	msgNoUsage         = "Aucune commande enregistrée."
	msgSheetPublished  = "Résumé publié: %s"
	msgSheetsDisabled  = "Google Sheets n'est pas configuré."

	exportFileLayout = "20060102_150405"
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	seasonArgPrefix  = "season="
	seasonSettingKey = "season"
)
