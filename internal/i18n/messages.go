package i18n

type text struct {
	en string
	uk string
}

// Error headings, one per error kind.
const (
	ErrorValidation Key = "error.validation"
	ErrorDuplicate  Key = "error.duplicate"
	ErrorNotFound   Key = "error.not_found"
	ErrorMalformed  Key = "error.malformed"
	ErrorUnexpected Key = "error.unexpected"
)

// Field validation.
const (
	NameInvalid     Key = "name.invalid"
	PhoneInvalid    Key = "phone.invalid"
	EmailInvalid    Key = "email.invalid"
	AddressInvalid  Key = "address.invalid"
	BirthdayInvalid Key = "birthday.invalid"
	TagInvalid      Key = "tag.invalid"
	NoteEmpty       Key = "note.empty"
	DaysInvalid     Key = "days.invalid"
	IndexInvalid    Key = "index.invalid"
	LanguageInvalid Key = "language.invalid"
)

// Contact record and address book.
const (
	PhoneExists       Key = "phone.exists"
	EmailExists       Key = "email.exists"
	AddressExists     Key = "address.exists"
	BirthdayExists    Key = "birthday.exists"
	BirthdayNotSet    Key = "birthday.not_set"
	PhonesEmpty       Key = "phones.empty"
	PhoneIndexMissing Key = "phone.index_missing"
	ContactNotFound   Key = "contact.not_found"

	RecordLine    Key = "record.line"
	PhonesNone    Key = "phones.none"
	PhonesOne     Key = "phones.one"
	PhonesMany    Key = "phones.many"
	BookTotal     Key = "book.total"
	EmptyField    Key = "field.empty"
	PagerContinue Key = "pager.continue"
)

// Contact commands.
const (
	Greeting              Key = "greeting"
	ContactAdded          Key = "contact.added"
	ContactExtended       Key = "contact.extended"
	AddressAdded          Key = "address.added"
	EmailAdded            Key = "email.added"
	BirthdayAdded         Key = "birthday.added"
	CongratNext           Key = "congrat.next"
	CongratSome           Key = "congrat.some"
	CongratNone           Key = "congrat.none"
	PhoneSet              Key = "phone.set"
	PhoneChanged          Key = "phone.changed"
	PromptPhoneAdd        Key = "prompt.phone.add"
	PromptPhoneIndex      Key = "prompt.phone.index"
	PromptPhoneNew        Key = "prompt.phone.new"
	EmailChanged          Key = "email.changed"
	PromptEmailNew        Key = "prompt.email.new"
	BirthdayChanged       Key = "birthday.changed"
	AddressSet            Key = "address.set"
	AddressChanged        Key = "address.changed"
	PromptAddressAdd      Key = "prompt.address.add"
	PromptAddressNew      Key = "prompt.address.new"
	PhoneDeleted          Key = "phone.deleted"
	EmailDeleted          Key = "email.deleted"
	BirthdayDeleted       Key = "birthday.deleted"
	AddressDeleted        Key = "address.deleted"
	ContactConfirmDelete  Key = "contact.confirm_delete"
	ContactDeleted        Key = "contact.deleted"
	ContactDeleteCanceled Key = "contact.delete_canceled"
	PhoneShow             Key = "phone.show"
	SearchTooShort        Key = "search.too_short"
	SearchNone            Key = "search.none"
	SearchFound           Key = "search.found"
)

// Notes.
const (
	NoteAdded       Key = "note.added"
	TagAdded        Key = "tag.added"
	TagExists       Key = "tag.exists"
	NoteChanged     Key = "note.changed"
	NoteDone        Key = "note.done"
	NoteAlreadyDone Key = "note.already_done"
	NoteDeleted     Key = "note.deleted"
	NoteNotFound    Key = "note.not_found"
	NotesFound      Key = "notes.found"
	NotesNone       Key = "notes.none"
	NotesHeader     Key = "notes.header"
	NotesFooter     Key = "notes.footer"
	NoteLine        Key = "note.line"
	NoteStatusDone  Key = "note.status_done"
	NoteStatusOpen  Key = "note.status_open"

	ChooserPage   Key = "chooser.page"
	ChooserNext   Key = "chooser.next"
	ChooserExit   Key = "chooser.exit"
	ChooserPrompt Key = "chooser.prompt"
	ChooserNone   Key = "chooser.none"
)

// Shell and session.
const (
	Banner           Key = "banner"
	UnknownCommand   Key = "command.unknown"
	Usage            Key = "usage"
	PromptLanguage   Key = "prompt.language"
	LanguageSwitched Key = "language.switched"
	Saved            Key = "saved"
	Goodbye          Key = "goodbye"
	ConfirmYes       Key = "confirm.yes"
	ConfirmNo        Key = "confirm.no"
	ConfirmHint      Key = "confirm.hint"
	BirthdaysNone    Key = "birthdays.none"
)

var messages = map[Key]text{
	ErrorValidation: {"Invalid input", "Некоректні дані"},
	ErrorDuplicate:  {"Already exists", "Вже існує"},
	ErrorNotFound:   {"Not found", "Не знайдено"},
	ErrorMalformed:  {"Check the correctness of data inputs", "Перевірте правильність набору даних"},
	ErrorUnexpected: {"Unexpected error: %v", "Неочікувана помилка: %v"},

	NameInvalid: {
		"The name cannot consist only of numbers and the minimum length of the name is 2 characters.",
		"Ім'я не може складатись тільки з цифр та мінімальна довжина імені 2 символа.",
	},
	PhoneInvalid: {
		"You entered the wrong phone number format. Minimum number of characters: %d. Maximum: %d.",
		"Ви ввели невірний формат номера. Мінімальна к-сть символів: %d. Максимальна: %d.",
	},
	EmailInvalid:    {"Invalid e-mail format", "Невірний формат e-mail"},
	AddressInvalid:  {"Address string must be at least %d symbols long", "Адреса повинна бути не менше %d символів довжиною"},
	BirthdayInvalid: {"use the date format DD.MM.YYYY or DD/MM/YYYY", "використовуйте формат дати ДД.ММ.РРРР або ДД/ММ/РРРР"},
	TagInvalid:      {"enter a non-empty #tag", "введіть непорожній #тег"},
	NoteEmpty:       {"enter the note text", "введіть текст нотатки"},
	DaysInvalid:     {"Enter number of days", "Введіть число днів"},
	IndexInvalid:    {"Enter a positive index, got %q", "Введіть додатний індекс, отримано %q"},
	LanguageInvalid: {"Choose eng or ukr, got %q", "Оберіть eng або ukr, отримано %q"},

	PhoneExists:       {"This phone number already exists", "Цей номер телефону вже існує"},
	EmailExists:       {"E-mail is already entered", "E-mail вже введений"},
	AddressExists:     {"Address is already entered", "Адреса вже введена"},
	BirthdayExists:    {"Birthday is already entered", "День народження вже введений"},
	BirthdayNotSet:    {"The date of birth is not entered yet", "Дата народження ще не введена"},
	PhonesEmpty:       {"This contact has no phone numbers saved", "В цього контакта немає збережених номерів телефону"},
	PhoneIndexMissing: {"There is no phone number with index %d", "Немає номера телефону з індексом %d"},
	ContactNotFound:   {`The contact "%s" is not in the address book`, `Контакт "%s" відсутній в адресній книзі`},

	RecordLine: {
		"%s: Phones: %s; E-mail: %s; Date of birth: %s; Address: %s \n",
		"%s: Телефони: %s; E-mail: %s; Дата народження: %s; Адреса: %s \n",
	},
	PhonesNone:    {"This contact has no phone numbers", "В цього контакта немає номерів телефону"},
	PhonesOne:     {"Current phone number %s", "Поточний номер телефону %s"},
	PhonesMany:    {"This contact has several phone numbers:", "В цього контакта декілька номерів телефону:"},
	BookTotal:     {"Total: %d contacts.", "Всього: %d контактів."},
	EmptyField:    {"-", "-"},
	PagerContinue: {"Press Enter to continue", "Натисніть Enter, щоб продовжити"},

	Greeting: {
		"Hello, I am your personal MemoMind bot assistant. How can I help?",
		"Вітаю, я Ваш персональний бот-помічник MemoMind. Чим можу допомогти?",
	},
	ContactAdded: {
		"Added contact '%s' with phone: %s, email: %s and address: %s",
		"Додано контакт '%s' з телефоном: %s, електронною поштою: %s та адресою: %s",
	},
	ContactExtended: {
		"Added phone number: %s, email: %s and address: %s for existing contact '%s'",
		"Для існуючого контакту '%[4]s' додано номер телефону: %[1]s, електронну пошту: %[2]s та адресу: %[3]s",
	},
	AddressAdded:  {`Added address: %s for existing contact "%s"`, `Для існуючого контакту "%[2]s" додано адресу: %[1]s`},
	EmailAdded:    {`Added e-mail for existing contact "%s": %s`, `Для існуючого контакту "%s" додано e-mail: %s`},
	BirthdayAdded: {`Birthday added for existing contact "%s": %s`, `Для існуючого контакту "%s" додано день народження: %s`},
	CongratNext:   {"During the next %d days %s", "В період наступних %d днів %s"},
	CongratSome:   {"the following contacts have birthdays:\n%s", "день народження в наступних контактів:\n%s"},
	CongratNone:   {"none of the contacts has a birthday", "ні в кого з контактів немає дня народження"},
	PhoneSet:      {`Changed phone number to %s for contact "%s"`, `Змінено номер телефону на %s для контакту "%s"`},
	PhoneChanged: {
		`Changed phone number %s to %s for contact "%s"`,
		`Змінено номер телефону %s на %s для контакту "%s"`,
	},
	PromptPhoneAdd:   {"If you want to add a phone number, enter the number: ", "Якщо хочете додати телефон, введіть номер: "},
	PromptPhoneIndex: {"Which one do you want to change (enter index): ", "Який ви хочете змінити (введіть індекс): "},
	PromptPhoneNew:   {"Please enter a new number: ", "Будь ласка, введіть новий номер: "},
	EmailChanged:     {`Changed e-mail of contact "%s" to %s`, `Змінено e-mail контакту "%s" на %s`},
	PromptEmailNew: {
		"If you want to change the e-mail, enter a new address: ",
		"Якщо хочете змінити e-mail, введіть нову адресу: ",
	},
	BirthdayChanged: {`Changed birthday to %s for contact "%s"`, `Змінено дату народження на %s для контакту "%s"`},
	AddressSet:      {`Added %s for contact "%s"`, `Додано адресу %s для контакту "%s"`},
	AddressChanged: {
		`Changed address %s to %s for contact "%s"`,
		`Змінено адресу %s на %s для контакту "%s"`,
	},
	PromptAddressAdd:      {"If you want to add an address, enter it: ", "Якщо хочете додати адресу, введіть її: "},
	PromptAddressNew:      {"Please enter a new address: ", "Будь ласка, введіть нову адресу: "},
	PhoneDeleted:          {"Contact %s, phone number %s deleted", "Контакт %s, телефон %s видалено"},
	EmailDeleted:          {"Contact %s, e-mail deleted", "Контакт %s, e-mail видалено"},
	BirthdayDeleted:       {"Contact %s, birthday deleted", "Контакт %s, день народження видалений"},
	AddressDeleted:        {"Contact %s, address deleted", "Контакт %s, адреса видалена"},
	ContactConfirmDelete:  {"Are you sure you want to delete %s?", "Ви впевнені, що хочете видалити контакт %s?"},
	ContactDeleted:        {"Contact %s removed!", "Контакт %s видалено!"},
	ContactDeleteCanceled: {"Contact %s kept", "Контакт %s залишено"},
	PhoneShow:             {`Contact "%s". %s`, `Контакт "%s". %s`},
	SearchTooShort:        {"search string length >= %d", "довжина рядка для пошуку >= %d"},
	SearchNone:            {"not found", "не знайдено"},
	SearchFound:           {"Found %d matches:\n%s", "Знайдено %d збігів:\n%s"},

	NoteAdded:       {"Note added", "Нотатка додана"},
	TagExists:       {"The note already has these tags", "Нотатка вже має ці теги"},
	TagAdded:        {`Tag "%s" added to record "%s"`, `Тег "%s" додано до запису "%s"`},
	NoteChanged:     {`Note changed to "%s"`, `Запис змінено на "%s"`},
	NoteDone:        {`The status of %s has been changed to "done"`, `Статус нотатки %s змінено на "виконано"`},
	NoteAlreadyDone: {`Note "%s" is already done`, `Нотатка "%s" вже виконана`},
	NoteDeleted:     {`"%s" deleted successfully`, `"%s" видалений успішно`},
	NoteNotFound:    {`Record "%s" not found`, `Запис "%s" не знайдений`},
	NotesFound:      {"Found notes for %s\n%s", "Знайдені нотатки за %s\n%s"},
	NotesNone:       {"Record not found", "Запис не знайдений"},
	NotesHeader:     {"list of notes", "список нотаток"},
	NotesFooter:     {"end of list of notes", "кінець списку нотаток"},
	NoteLine: {
		"%s creation date: %s. Content: %s. Status: %s",
		"%s дата створення: %s. Зміст: %s. Статус: %s",
	},
	NoteStatusDone: {"done. Date done %s", "виконано. Дата виконання %s"},
	NoteStatusOpen: {"not done", "не виконано"},

	ChooserPage:   {"Notes %d-%d:", "Нотатки %d-%d:"},
	ChooserNext:   {`"next" for continue`, `"next" для продовження`},
	ChooserExit:   {"0. Exit", "0. Вихід"},
	ChooserPrompt: {"Enter your choice: ", "Введіть ваш вибір: "},
	ChooserNone:   {"Nothing selected", "Нічого не вибрано"},

	Banner:           {"Available commands: %s", "Доступні команди: %s"},
	UnknownCommand:   {"There is no such command", "Такої команди немає"},
	Usage:            {"usage: %s", "використання: %s"},
	PromptLanguage:   {"Choose language: English or Ukrainian? (eng/ukr) ", "Виберіть мову: англійська або українська? (eng/ukr) "},
	LanguageSwitched: {"The language was successfully selected", "Мову виводу на екран успішно вибрано"},
	Saved:            {"Contacts and notes saved", "Контакти та нотатки збережено"},
	Goodbye:          {"Good bye", "До побачення"},
	ConfirmYes:       {"Yes", "Так"},
	ConfirmNo:        {"No", "Ні"},
	ConfirmHint:      {"←/→ to select • enter to confirm • y/n for quick select", "←/→ вибір • enter підтвердити • т/н швидкий вибір"},
	BirthdaysNone:    {"No birthdays in the next %d days", "Немає днів народження протягом %d днів"},
}
