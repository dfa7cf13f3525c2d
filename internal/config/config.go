package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Life Calculator"
	AppID       = "com.github.tartampluch.go-lifecalc"
	AppCommand  = "go-lifecalc"
	AppUsage    = "Life milestone dates and normal-distribution rank estimates"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// FilePermExport represents -rw-r--r--. Exported spreadsheets are meant to be shared.
	FilePermExport fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDebug      = "debug"
	FlagBirth      = "birth"
	FlagToday      = "today"
	FlagProfile    = "profile"
	FlagOut        = "out"
	FlagICS        = "ics"
	FlagFormat     = "format"
	FlagScore      = "score"
	FlagMean       = "mean"
	FlagStdDev     = "std-dev"
	FlagPopulation = "population"

	FlagDescDebug      = "Enable debug logging to stdout"
	FlagDescBirth      = "Birth date (YYYY-MM-DD)"
	FlagDescToday      = "Reference date used instead of today (YYYY-MM-DD)"
	FlagDescProfile    = "YAML profile providing defaults and a custom milestone table"
	FlagDescOut        = "Spreadsheet output path"
	FlagDescICS        = "Also write the milestones as an iCalendar file"
	FlagDescFormat     = "Output format: table, text or json"
	FlagDescScore      = "Your score"
	FlagDescMean       = "Population mean"
	FlagDescStdDev     = "Population standard deviation (> 0)"
	FlagDescPopulation = "Population size (>= 1)"

	CmdMilestones      = "milestones"
	CmdRank            = "rank"
	CmdUsageMilestones = "Compute life milestone dates from a birth date"
	CmdUsageRank       = "Estimate a rank from a score using the normal distribution"

	// Command-line result lines.
	OutNextMilestone = "\nNext: %s in %s days\n"
	OutRankResult    = "Z score: %.3f\nPercentile (at or below): %.2f%%\nEstimated rank: %s / %s\n"
	OutError         = "Error: %v"

	FormatTable = "table"
	FormatText  = "text"
	FormatJSON  = "json"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 860
	MainWindowHeight    = 560
	SettingsWindowWidth = 520

	// Preference Keys
	PrefLanguage    = "language"
	PrefBirthDate   = "birth_date"
	PrefProfilePath = "profile_path"
	PrefExportDir   = "export_dir"
	PrefLastRun     = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr", "ko"}

// -----------------------------------------------------------------------------
// Milestone Table Constants
// -----------------------------------------------------------------------------

const (
	// Column IDs
	ColIDLabel   = 0
	ColIDDesc    = 1
	ColIDDate    = 2
	ColIDWeekday = 3
	ColIDRemain  = 4
	ColCount     = 5

	// Column Widths
	ColWidthLabel   = 170
	ColWidthDesc    = 260
	ColWidthDate    = 110
	ColWidthWeekday = 110
	ColWidthRemain  = 120

	DateFormatDisplay = "2006-01-02"
	TablePlaceholder  = "Cell Content"
)

// -----------------------------------------------------------------------------
// UI Contact Picker Constants
// -----------------------------------------------------------------------------

const (
	ContactsWinWidth  = 420
	ContactsWinHeight = 400

	ColIDContactName = 0
	ColIDContactDate = 1

	ColWidthContactName = 260
	ColWidthContactDate = 120

	SortIconAsc  = " ▲"
	SortIconDesc = " ▼"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle       = "win_title"
	TKeyWinSettings    = "win_settings_title"
	TKeyWinContacts    = "win_contacts_title"
	TKeyTabMilestones  = "tab_milestones"
	TKeyTabRank        = "tab_rank"
	TKeyMenuOpen       = "menu_open"
	TKeyMenuSettings   = "menu_settings"
	TKeyTrayNext       = "tray_next"      // Requires Label, Days
	TKeyTrayNone       = "tray_none"      // No upcoming milestone
	TKeyLblBirthDate   = "lbl_birth_date" // Birth date entry label
	TKeyHelpBirthDate  = "help_birth_date"
	TKeyBtnCalculate   = "btn_calculate"
	TKeyBtnImport      = "btn_import_vcard"
	TKeyBtnExportXLSX  = "btn_export_xlsx"
	TKeyBtnExportICS   = "btn_export_ics"
	TKeyBtnSave        = "btn_save"
	TKeyBtnCancel      = "btn_cancel"
	TKeyBtnBrowse      = "btn_browse"
	TKeyLblNext        = "lbl_next_milestone" // Requires Label, Days
	TKeyLblNoNext      = "lbl_no_next_milestone"
	TKeyLblScore       = "lbl_score"
	TKeyLblMean        = "lbl_mean"
	TKeyLblStdDev      = "lbl_std_dev"
	TKeyLblPopulation  = "lbl_population"
	TKeyLblZScore      = "lbl_z_score"     // Requires Value
	TKeyLblPercentile  = "lbl_percentile"  // Requires Value
	TKeyLblRank        = "lbl_rank"        // Requires Rank, Population
	TKeyLblRankIntro   = "lbl_rank_intro"
	TKeyLblMsIntro     = "lbl_milestones_intro"
	TKeyLblLanguage    = "lbl_language"
	TKeyHelpLanguage   = "help_language"
	TKeyLblProfile     = "lbl_profile"
	TKeyHelpProfile    = "help_profile"
	TKeyLblExportDir   = "lbl_export_dir"
	TKeyHelpExportDir  = "help_export_dir"
	TKeyLblGeneral     = "lbl_general"
	TKeyLblFooter      = "lbl_footer"
	TKeyNotifExported  = "notif_exported" // Requires Path
	TKeyNotifProfile   = "notif_profile_reloaded"
	TKeyNoContacts     = "msg_no_contacts"
	TKeyTitleExport    = "title_export_error"
	TKeyTitleImport    = "title_import_error"
	TKeyErrDate        = "err_invalid_date"
	TKeyErrNumber      = "err_invalid_number"
	TKeyErrStdDev      = "err_std_dev"
	TKeyErrPopulation  = "err_population"
	TKeyErrExport      = "err_export_failed"

	// Column Headers (shared by table and spreadsheet export)
	TKeyColLabel      = "col_label"
	TKeyColDesc       = "col_description"
	TKeyColDate       = "col_date"
	TKeyColWeekday    = "col_weekday"
	TKeyColRemain     = "col_days_remaining"
	TKeyColName       = "col_name"
	TKeyColScore      = "col_score"
	TKeyColMean       = "col_mean"
	TKeyColStdDev     = "col_std_dev"
	TKeyColPopulation = "col_population"
	TKeyColZScore     = "col_z_score"
	TKeyColPercentile = "col_percentile"
	TKeyColRank       = "col_rank"

	// Prefixes combined with a milestone ID or weekday name.
	TKeyPrefixMilestone = "ms_"
	TKeySuffixLabel     = "_label"
	TKeySuffixDesc      = "_desc"
	TKeyPrefixWeekday   = "weekday_"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage   = "en"
	DefaultBirthDate  = "2000-01-01"
	DefaultScore      = 100.0
	DefaultMean       = 100.0
	DefaultStdDev     = 15.0
	DefaultPopulation = 100
	MinStdDevUI       = 0.1 // Smallest spread accepted by the rank page
	DaysPerYear       = 365 // Year-based milestones use a flat 365-day year
	MinCalendarYear   = 1
	MaxCalendarYear   = 9999
	UIDSalt           = "go-lifecalc-v1-" // Salt for deterministic UID generation
	FallbackName      = "Unknown"

	// Rounding applied to the rank spreadsheet row.
	ZScoreDecimals     = 3
	PercentileDecimals = 2
)

// -----------------------------------------------------------------------------
// Export File Names & Sheets
// -----------------------------------------------------------------------------

const (
	FileMilestonesXLSX = "life_special_days.xlsx"
	FileMilestonesICS  = "life_special_days.ics"
	FileRankXLSX       = "rank_result.xlsx"

	SheetMilestones = "Special Days"
	SheetRank       = "Rank"

	// Excel number format used for target dates.
	XLSXDateFormat = "yyyy-mm-dd"

	ExtXLSX  = ".xlsx"
	ExtICS   = ".ics"
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
	ExtYAML  = ".yaml"
	ExtYML   = ".yml"
)

// Default spreadsheet headers, used when no localizer is available.
var (
	DefaultMilestoneHeaders = []string{"Special day", "Meaning", "Date", "Weekday", "Days remaining"}
	DefaultRankHeaders      = []string{"Score", "Mean", "Std dev", "Population", "Z score", "Percentile (%)", "Estimated rank"}
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Life Calculator//Export//EN"
	ICalCalName = "Special Days"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "golifecalc"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDescription = "DESCRIPTION"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	// StubVCalendar is the minimal valid iCalendar object used when there are no events.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Data Formats & Hashing
// -----------------------------------------------------------------------------

const (
	// Date layouts accepted at the input boundary (entries, flags, vCard BDAY).
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidInput     = "invalid input"
	ErrInvalidDate      = "invalid date"
	ErrStdDevPositive   = "standard deviation must be greater than zero"
	ErrPopulationMin    = "population must be at least 1"
	ErrNotFinite        = "score, mean and standard deviation must be finite numbers"
	ErrOffsetNegative   = "milestone offset must not be negative"
	ErrDateZero         = "birth date is required"
	ErrDateRange        = "date is outside the supported calendar range"
	ErrDateParse        = "unable to parse date"
	ErrExportFailed     = "export failed"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrXLSXWrite        = "failed to write spreadsheet"
	ErrJSONEncode       = "failed to encode JSON"
	ErrCreateFile       = "failed to create output file"
	ErrLocalPathEmpty   = "configuration error: vCard path is empty"
	ErrVCardOpen        = "failed to open vCard file"
	ErrProfileRead      = "profile: read file"
	ErrProfileParse     = "profile: parse yaml"
	ErrProfileInvalid   = "profile: invalid"
	ErrProfileWatch     = "profile: watcher failed"
	ErrHomeDir          = "profile: cannot expand ~"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrTrayNotSupported = "system tray not supported on this platform/driver"
	ErrUnknownFormat    = "unknown output format"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackTrayLabel = "Go Life Calculator"

	MsgAppStop         = "Application stopped gracefully"
	MsgAppStarting     = "Starting application"
	MsgCtxCancel       = "Context cancelled, shutting down UI"
	MsgMilestonesDone  = "Milestones computed"
	MsgRankDone        = "Rank computed"
	MsgRankRejected    = "Rank input rejected"
	MsgDateRejected    = "Birth date rejected"
	MsgExportDone      = "Export written"
	MsgExportFailed    = "Export failed"
	MsgSkippedCard     = "Skipping malformed vCard"
	MsgSkippedDate     = "Skipping invalid date format"
	MsgSkippedNoYear   = "Skipping birthday without year"
	MsgImportDone      = "vCard import finished"
	MsgProfileLoaded   = "Profile loaded"
	MsgProfileWatching = "Watching profile for changes"
	MsgProfileReloaded = "Profile reloaded"
	MsgProfileKeep     = "Profile reload failed, keeping previous profile"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
	MsgOpenContacts    = "Opening contact picker"
	MsgContactsSorted  = "Contacts sorted"
	MsgContactPicked   = "Contact selected"
	MsgSettingsSaved   = "Saving preferences"

	PlaceholderDate = "YYYY-MM-DD"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyPath      = "path"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyBirth     = "birth_date"
	LogKeyReference = "reference_date"
	LogKeyZScore    = "z_score"
	LogKeyPercent   = "percentile"
	LogKeyRank      = "rank"
	LogKeyClamped   = "clamped"
	LogKeyFormat    = "format"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeySortCol   = "sort_column"
	LogKeySortAsc   = "sort_asc"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompUISet    = "ui_settings"
	CompEngine   = "engine"
	CompContacts = "contacts"
	CompExport   = "export"
	CompConfig   = "config"
	CompCLI      = "cli"
	CompMain     = "main"
	CompI18n     = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
