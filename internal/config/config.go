package config

import (
	"io/fs"
	"time"
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

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Contacts/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Contacts"
	AppID             = "com.github.tartampluch.go-contacts"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
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

	// FilePermShared represents -rw-r--r--.
	// Used for exported .vcf/.ics files the user explicitly asked for.
	FilePermShared fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagServe       = "serve"
	FlagPort        = "port"
	FlagLang        = "lang"
	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging to stdout"
	FlagDescServe   = "Publish the birthday calendar on a localhost HTTP endpoint"
	FlagDescPort    = "Port for the calendar endpoint"
	FlagDescLang    = "Shell language (ISO 639-1)"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Shell Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdExport       = "export"
	CmdImport       = "import"
	CmdCalendar     = "calendar"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome    = "shell_welcome"
	TKeyPrompt     = "shell_prompt"
	TKeyGoodbye    = "shell_goodbye"
	TKeyGreeting   = "shell_greeting"
	TKeyEmptyInput = "shell_empty_input"
	TKeyInvalidCmd = "shell_invalid_command"
	TKeyExported   = "shell_exported"    // Requires Count, Path
	TKeyImported   = "shell_imported"    // Requires Count
	TKeyCalWritten = "shell_cal_written" // Requires Path
	TKeyDeleted    = "shell_deleted"     // Requires Name
)

// SupportedLanguages defines the list of available shell languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Status Messages (fixed contract with callers; never localized)
// -----------------------------------------------------------------------------

const (
	MsgContactAdded   = "Contact added."
	MsgContactUpdated = "Contact updated."
	MsgPhoneUpdated   = "Phone number updated."
	MsgBirthdayAdded  = "Birthday added"
	MsgBirthdayUnset  = "Birthday not set"
	MsgNoContacts     = "No contacts available."
	MsgNoUpcoming     = "There are no birthdays in the next 7 days."
)

// -----------------------------------------------------------------------------
// Validation & Lookup Error Messages (fixed contract; never localized)
// -----------------------------------------------------------------------------

const (
	ErrNameLetters     = "Name must contain only letters"
	ErrPhoneDigits     = "Phone number must be 10 digits"
	ErrDateFormat      = "Invalid date format. Use DD.MM.YYYY"
	ErrContactNotFound = "Contact not found."

	ErrArgsAddContact   = "Please provide contact name and phone number."
	ErrArgsChange       = "Please provide contact name, old phone number and new phone number."
	ErrArgsName         = "Please provide contact name."
	ErrArgsNameBirthday = "Please provide contact name and birthday date."
	ErrArgsPath         = "Please provide a file path."
	ErrArgsSource       = "Please provide a file path or URL."
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18080"
	DefaultLanguage = "en"

	// LookaheadDays is the inclusive upcoming-birthday window measured from today.
	LookaheadDays = 7

	// PhoneLength is the exact number of decimal digits a phone number must have.
	PhoneLength = 10
)

// -----------------------------------------------------------------------------
// Data Formats & Separators
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the input/output layout for birthdays (DD.MM.YYYY).
	DateFormatBirthday = "02.01.2006"

	// DateFormatCongrats is the layout for congratulation dates in reports (YYYY.MM.DD).
	DateFormatCongrats = "2006.01.02"

	// DateFormatVCard is the BDAY layout written to exported vCards.
	DateFormatVCard = "2006-01-02"

	PhoneSeparator = "; "
	LineSeparator  = "\n"

	// FormatRecord renders one record: name, joined phones, optional birthday suffix.
	FormatRecord         = "Contact name: %s, phones: %s%s"
	FormatRecordBirthday = ", birthday: %s"

	// FormatGreetingLine renders one line of the upcoming-birthdays report.
	FormatGreetingLine = "%s: birthday on %s, celebrate on %s"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Contacts//Engine//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gocontacts"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
	VCardTEL  = "TEL"

	DefaultICalRefresh = 1 * time.Hour

	// FormatEventSummary renders one birthday event title.
	FormatEventSummary = "Birthday: %s"

	// FormatUID expects base, year, domain.
	FormatUID = "%s-%d@%s"

	// UID Generation
	UIDSalt         = "go-contacts-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"

	// StubVCalendar is the minimal valid iCalendar object used when no events exist.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 64 * 1024 * 1024 // 64MB; a .vcf feed is text, not photos
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteRoot           = "/"
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrVCardParse     = "failed to parse vCard stream"
	ErrVCardEncode    = "failed to encode vCard data"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrOpenSource     = "failed to open import source"
	ErrWriteFile      = "failed to write output file"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar cache updated"
	MsgShellStart    = "Interactive shell started"
	MsgShellStop     = "Interactive shell terminated"
	MsgCtxCancel     = "Context cancelled, shutting down shell"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgSkippedPhone  = "Skipping invalid phone number"
	MsgGenSuccess    = "Calendar generation successful"
	MsgImportDone    = "Import finished"
	MsgExportDone    = "Export finished"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgCmdHandled    = "Command handled"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyValue     = "value"
	LogKeyCommand   = "command"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyDuration  = "duration_ms"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeyStats     = "stats"

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
	CompBook     = "book"
	CompSchedule = "schedule"
	CompEngine   = "engine"
	CompServer   = "server"
	CompFetcher  = "fetcher"
	CompShell    = "shell"
	CompMain     = "main"
	CompI18n     = "i18n"
)
