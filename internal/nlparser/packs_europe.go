package nlparser

var germanPack = packSpec{
	wordBoundaries: true,
	priority: map[string]string{
		"dringend":          PriorityUrgent,
		"sofort":            PriorityUrgent,
		"hohe priorität":    PriorityHigh,
		"wichtig":           PriorityHigh,
		"mittlere priorität": PriorityNormal,
		"normale priorität": PriorityNormal,
		"niedrige priorität": PriorityLow,
	},
	status: map[string]string{
		"zu erledigen":   StatusOpen,
		"offen":          StatusOpen,
		"in bearbeitung": StatusInProgress,
		"läuft":          StatusInProgress,
		"erledigt":       StatusDone,
		"fertig":         StatusDone,
		"abgeschlossen":  StatusDone,
		"abgebrochen":    StatusCancelled,
		"storniert":      StatusCancelled,
		"wartend":        StatusWaiting,
		"wartet":         StatusWaiting,
		"blockiert":      StatusWaiting,
	},
	recurrenceUnits: map[string]Frequency{
		"tag": Daily, "tage": Daily, "tagen": Daily,
		"woche": Weekly, "wochen": Weekly,
		"monat": Monthly, "monate": Monthly, "monaten": Monthly,
	},
	recurrence: []RecurrencePattern{
		{Kind: KindRecurrenceInterval, Pattern: `(?:alle|jede[nrs]?) {n} {unit}`},
		{Kind: KindRecurrenceOther, Pattern: `jede[nrs]? zweite[nrs]? {unit}`},
		{Kind: KindRecurrenceUnit, Pattern: `jede[nrs]? {unit}`},
		{Kind: KindRecurrenceFixed, Pattern: `zweiwöchentlich`, Freq: Weekly, Interval: 2},
		{Kind: KindRecurrenceFixed, Pattern: `täglich`, Freq: Daily},
		{Kind: KindRecurrenceFixed, Pattern: `wöchentlich`, Freq: Weekly},
		{Kind: KindRecurrenceFixed, Pattern: `monatlich`, Freq: Monthly},
	},
	durationUnits: map[string]int{
		"stunden": 60, "stunde": 60, "std": 60, "h": 60,
		"minuten": 1, "minute": 1, "min": 1, "m": 1,
	},
	joiners:    []string{"und"},
	dueMarkers: []string{"fällig", "fällig am", "bis", "bis zum", "deadline"},
}

var spanishPack = packSpec{
	wordBoundaries: true,
	priority: map[string]string{
		"urgente":          PriorityUrgent,
		"alta prioridad":   PriorityHigh,
		"prioridad alta":   PriorityHigh,
		"importante":       PriorityHigh,
		"prioridad normal": PriorityNormal,
		"prioridad media":  PriorityNormal,
		"baja prioridad":   PriorityLow,
		"prioridad baja":   PriorityLow,
	},
	status: map[string]string{
		"pendiente":   StatusOpen,
		"por hacer":   StatusOpen,
		"en progreso": StatusInProgress,
		"en curso":    StatusInProgress,
		"hecho":       StatusDone,
		"terminado":   StatusDone,
		"completado":  StatusDone,
		"cancelado":   StatusCancelled,
		"esperando":   StatusWaiting,
		"en espera":   StatusWaiting,
		"bloqueado":   StatusWaiting,
	},
	recurrenceUnits: map[string]Frequency{
		"día": Daily, "días": Daily, "dia": Daily, "dias": Daily,
		"semana": Weekly, "semanas": Weekly,
		"mes": Monthly, "meses": Monthly,
	},
	recurrence: []RecurrencePattern{
		{Kind: KindRecurrenceInterval, Pattern: `cada {n} {unit}`},
		{Kind: KindRecurrenceOther, Pattern: `cada dos {unit}`},
		{Kind: KindRecurrenceUnit, Pattern: `cada {unit}`},
		{Kind: KindRecurrenceFixed, Pattern: `todos los días|diariamente`, Freq: Daily},
		{Kind: KindRecurrenceFixed, Pattern: `todas las semanas|semanalmente`, Freq: Weekly},
		{Kind: KindRecurrenceFixed, Pattern: `todos los meses|mensualmente`, Freq: Monthly},
	},
	durationUnits: map[string]int{
		"horas": 60, "hora": 60, "h": 60,
		"minutos": 1, "minuto": 1, "min": 1, "m": 1,
	},
	joiners:    []string{"y"},
	dueMarkers: []string{"vence", "vence el", "fecha límite", "para el"},
}

var frenchPack = packSpec{
	wordBoundaries: true,
	priority: map[string]string{
		"urgent":            PriorityUrgent,
		"haute priorité":    PriorityHigh,
		"priorité haute":    PriorityHigh,
		"important":         PriorityHigh,
		"priorité normale":  PriorityNormal,
		"basse priorité":    PriorityLow,
		"priorité basse":    PriorityLow,
	},
	status: map[string]string{
		"à faire":    StatusOpen,
		"en cours":   StatusInProgress,
		"fait":       StatusDone,
		"terminé":    StatusDone,
		"fini":       StatusDone,
		"annulé":     StatusCancelled,
		"en attente": StatusWaiting,
		"bloqué":     StatusWaiting,
	},
	recurrenceUnits: map[string]Frequency{
		"jour": Daily, "jours": Daily,
		"semaine": Weekly, "semaines": Weekly,
		"mois": Monthly,
	},
	recurrence: []RecurrencePattern{
		{Kind: KindRecurrenceInterval, Pattern: `tou(?:s|tes) les {n} {unit}`},
		{Kind: KindRecurrenceOther, Pattern: `tou(?:s|tes) les deux {unit}`},
		{Kind: KindRecurrenceUnit, Pattern: `chaque {unit}`},
		{Kind: KindRecurrenceFixed, Pattern: `tous les jours|quotidiennement`, Freq: Daily},
		{Kind: KindRecurrenceFixed, Pattern: `toutes les semaines|chaque semaine|hebdomadaire(?:ment)?`, Freq: Weekly},
		{Kind: KindRecurrenceFixed, Pattern: `tous les mois|mensuellement`, Freq: Monthly},
	},
	durationUnits: map[string]int{
		"heures": 60, "heure": 60, "h": 60,
		"minutes": 1, "minute": 1, "min": 1, "mn": 1,
	},
	joiners:    []string{"et"},
	dueMarkers: []string{"échéance", "pour", "avant"},
}

var italianPack = packSpec{
	wordBoundaries: true,
	priority: map[string]string{
		"urgente":           PriorityUrgent,
		"alta priorità":     PriorityHigh,
		"priorità alta":     PriorityHigh,
		"importante":        PriorityHigh,
		"priorità normale":  PriorityNormal,
		"priorità media":    PriorityNormal,
		"bassa priorità":    PriorityLow,
		"priorità bassa":    PriorityLow,
	},
	status: map[string]string{
		"da fare":    StatusOpen,
		"in corso":   StatusInProgress,
		"fatto":      StatusDone,
		"completato": StatusDone,
		"finito":     StatusDone,
		"annullato":  StatusCancelled,
		"in attesa":  StatusWaiting,
		"bloccato":   StatusWaiting,
	},
	recurrenceUnits: map[string]Frequency{
		"giorno": Daily, "giorni": Daily,
		"settimana": Weekly, "settimane": Weekly,
		"mese": Monthly, "mesi": Monthly,
	},
	recurrence: []RecurrencePattern{
		{Kind: KindRecurrenceInterval, Pattern: `ogni {n} {unit}`},
		{Kind: KindRecurrenceOther, Pattern: `ogni due {unit}`},
		{Kind: KindRecurrenceUnit, Pattern: `ogni {unit}`},
		{Kind: KindRecurrenceFixed, Pattern: `tutti i giorni|quotidianamente|giornalmente`, Freq: Daily},
		{Kind: KindRecurrenceFixed, Pattern: `settimanalmente`, Freq: Weekly},
		{Kind: KindRecurrenceFixed, Pattern: `mensilmente`, Freq: Monthly},
	},
	durationUnits: map[string]int{
		"ore": 60, "ora": 60, "h": 60,
		"minuti": 1, "minuto": 1, "min": 1, "m": 1,
	},
	joiners:    []string{"e"},
	dueMarkers: []string{"entro", "entro il", "scadenza"},
}

var portuguesePack = packSpec{
	wordBoundaries: true,
	priority: map[string]string{
		"urgente":           PriorityUrgent,
		"alta prioridade":   PriorityHigh,
		"prioridade alta":   PriorityHigh,
		"importante":        PriorityHigh,
		"prioridade normal": PriorityNormal,
		"prioridade média":  PriorityNormal,
		"baixa prioridade":  PriorityLow,
		"prioridade baixa":  PriorityLow,
	},
	status: map[string]string{
		"a fazer":      StatusOpen,
		"pendente":     StatusOpen,
		"em andamento": StatusInProgress,
		"em progresso": StatusInProgress,
		"feito":        StatusDone,
		"concluído":    StatusDone,
		"terminado":    StatusDone,
		"cancelado":    StatusCancelled,
		"aguardando":   StatusWaiting,
		"em espera":    StatusWaiting,
		"bloqueado":    StatusWaiting,
	},
	recurrenceUnits: map[string]Frequency{
		"dia": Daily, "dias": Daily,
		"semana": Weekly, "semanas": Weekly,
		"mês": Monthly, "mes": Monthly, "meses": Monthly,
	},
	recurrence: []RecurrencePattern{
		{Kind: KindRecurrenceInterval, Pattern: `(?:a )?cada {n} {unit}`},
		{Kind: KindRecurrenceOther, Pattern: `(?:a )?cada (?:dois|duas) {unit}`},
		{Kind: KindRecurrenceUnit, Pattern: `(?:a )?cada {unit}`},
		{Kind: KindRecurrenceFixed, Pattern: `todos os dias|diariamente`, Freq: Daily},
		{Kind: KindRecurrenceFixed, Pattern: `todas as semanas|semanalmente`, Freq: Weekly},
		{Kind: KindRecurrenceFixed, Pattern: `todos os meses|mensalmente`, Freq: Monthly},
	},
	durationUnits: map[string]int{
		"horas": 60, "hora": 60, "h": 60,
		"minutos": 1, "minuto": 1, "min": 1, "m": 1,
	},
	joiners:    []string{"e"},
	dueMarkers: []string{"até", "prazo", "vence"},
}

var dutchPack = packSpec{
	wordBoundaries: true,
	priority: map[string]string{
		"dringend":            PriorityUrgent,
		"urgent":              PriorityUrgent,
		"hoge prioriteit":     PriorityHigh,
		"belangrijk":          PriorityHigh,
		"normale prioriteit":  PriorityNormal,
		"lage prioriteit":     PriorityLow,
	},
	status: map[string]string{
		"te doen":        StatusOpen,
		"bezig":          StatusInProgress,
		"in uitvoering":  StatusInProgress,
		"klaar":          StatusDone,
		"gedaan":         StatusDone,
		"voltooid":       StatusDone,
		"geannuleerd":    StatusCancelled,
		"wachtend":       StatusWaiting,
		"geblokkeerd":    StatusWaiting,
	},
	recurrenceUnits: map[string]Frequency{
		"dag": Daily, "dagen": Daily,
		"week": Weekly, "weken": Weekly,
		"maand": Monthly, "maanden": Monthly,
	},
	recurrence: []RecurrencePattern{
		{Kind: KindRecurrenceInterval, Pattern: `(?:elke|iedere) {n} {unit}`},
		{Kind: KindRecurrenceOther, Pattern: `om de {unit}`},
		{Kind: KindRecurrenceUnit, Pattern: `(?:elke|iedere) {unit}`},
		{Kind: KindRecurrenceFixed, Pattern: `dagelijks`, Freq: Daily},
		{Kind: KindRecurrenceFixed, Pattern: `wekelijks`, Freq: Weekly},
		{Kind: KindRecurrenceFixed, Pattern: `maandelijks`, Freq: Monthly},
	},
	durationUnits: map[string]int{
		"uren": 60, "uur": 60, "u": 60, "h": 60,
		"minuten": 1, "minuut": 1, "min": 1, "m": 1,
	},
	joiners:    []string{"en"},
	dueMarkers: []string{"uiterlijk", "deadline", "voor"},
}

var russianPack = packSpec{
	wordBoundaries: true,
	priority: map[string]string{
		"срочно":             PriorityUrgent,
		"срочная":            PriorityUrgent,
		"высокий приоритет":  PriorityHigh,
		"важно":              PriorityHigh,
		"обычный приоритет":  PriorityNormal,
		"средний приоритет":  PriorityNormal,
		"низкий приоритет":   PriorityLow,
	},
	status: map[string]string{
		"к выполнению":   StatusOpen,
		"в процессе":     StatusInProgress,
		"в работе":       StatusInProgress,
		"сделано":        StatusDone,
		"готово":         StatusDone,
		"выполнено":      StatusDone,
		"отменено":       StatusCancelled,
		"ожидание":       StatusWaiting,
		"заблокировано":  StatusWaiting,
	},
	recurrenceUnits: map[string]Frequency{
		"день": Daily, "дня": Daily, "дней": Daily,
		"неделя": Weekly, "неделю": Weekly, "недели": Weekly, "недель": Weekly,
		"месяц": Monthly, "месяца": Monthly, "месяцев": Monthly,
	},
	recurrence: []RecurrencePattern{
		{Kind: KindRecurrenceInterval, Pattern: `кажд(?:ые|ый|ую) {n} {unit}`},
		{Kind: KindRecurrenceOther, Pattern: `кажд(?:ый|ую|ое) втор(?:ой|ую|ое) {unit}`},
		{Kind: KindRecurrenceUnit, Pattern: `кажд(?:ый|ую|ое) {unit}`},
		{Kind: KindRecurrenceFixed, Pattern: `ежедневно`, Freq: Daily},
		{Kind: KindRecurrenceFixed, Pattern: `еженедельно`, Freq: Weekly},
		{Kind: KindRecurrenceFixed, Pattern: `ежемесячно`, Freq: Monthly},
	},
	durationUnits: map[string]int{
		"часов": 60, "часа": 60, "час": 60, "ч": 60,
		"минут": 1, "минуты": 1, "минута": 1, "мин": 1, "м": 1,
	},
	joiners:    []string{"и"},
	dueMarkers: []string{"до", "срок"},
}

var swedishPack = packSpec{
	wordBoundaries: true,
	priority: map[string]string{
		"brådskande":       PriorityUrgent,
		"hög prioritet":    PriorityHigh,
		"viktigt":          PriorityHigh,
		"normal prioritet": PriorityNormal,
		"låg prioritet":    PriorityLow,
	},
	status: map[string]string{
		"att göra":  StatusOpen,
		"pågående":  StatusInProgress,
		"pågår":     StatusInProgress,
		"klar":      StatusDone,
		"klart":     StatusDone,
		"färdig":    StatusDone,
		"avbruten":  StatusCancelled,
		"inställd":  StatusCancelled,
		"väntar":    StatusWaiting,
		"blockerad": StatusWaiting,
	},
	recurrenceUnits: map[string]Frequency{
		"dag": Daily, "dagar": Daily,
		"vecka": Weekly, "veckor": Weekly,
		"månad": Monthly, "månader": Monthly,
	},
	recurrence: []RecurrencePattern{
		{Kind: KindRecurrenceInterval, Pattern: `var(?:je)? {n} {unit}`},
		{Kind: KindRecurrenceOther, Pattern: `varann(?:an|at) {unit}`},
		{Kind: KindRecurrenceUnit, Pattern: `varje {unit}`},
		{Kind: KindRecurrenceFixed, Pattern: `dagligen`, Freq: Daily},
		{Kind: KindRecurrenceFixed, Pattern: `veckovis`, Freq: Weekly},
		{Kind: KindRecurrenceFixed, Pattern: `månadsvis`, Freq: Monthly},
	},
	durationUnits: map[string]int{
		"timmar": 60, "timme": 60, "tim": 60, "h": 60,
		"minuter": 1, "minut": 1, "min": 1, "m": 1,
	},
	joiners:    []string{"och"},
	dueMarkers: []string{"senast", "deadline", "förfaller"},
}

var polishPack = packSpec{
	wordBoundaries: true,
	priority: map[string]string{
		"pilne":              PriorityUrgent,
		"pilny":              PriorityUrgent,
		"wysoki priorytet":   PriorityHigh,
		"ważne":              PriorityHigh,
		"normalny priorytet": PriorityNormal,
		"średni priorytet":   PriorityNormal,
		"niski priorytet":    PriorityLow,
	},
	status: map[string]string{
		"do zrobienia": StatusOpen,
		"w toku":       StatusInProgress,
		"w trakcie":    StatusInProgress,
		"zrobione":     StatusDone,
		"gotowe":       StatusDone,
		"ukończone":    StatusDone,
		"anulowane":    StatusCancelled,
		"oczekuje":     StatusWaiting,
		"zablokowane":  StatusWaiting,
	},
	recurrenceUnits: map[string]Frequency{
		"dzień": Daily, "dni": Daily, "dnia": Daily,
		"tydzień": Weekly, "tygodnie": Weekly, "tygodni": Weekly,
		"miesiąc": Monthly, "miesiące": Monthly, "miesięcy": Monthly,
	},
	recurrence: []RecurrencePattern{
		{Kind: KindRecurrenceInterval, Pattern: `co {n} {unit}`},
		{Kind: KindRecurrenceOther, Pattern: `co drug(?:i|ą) {unit}`},
		{Kind: KindRecurrenceUnit, Pattern: `(?:co|każdy|każdego) {unit}`},
		{Kind: KindRecurrenceFixed, Pattern: `codziennie`, Freq: Daily},
		{Kind: KindRecurrenceFixed, Pattern: `tygodniowo|cotygodniowo`, Freq: Weekly},
		{Kind: KindRecurrenceFixed, Pattern: `miesięcznie|comiesięcznie`, Freq: Monthly},
	},
	durationUnits: map[string]int{
		"godzin": 60, "godziny": 60, "godzina": 60, "godz": 60, "h": 60,
		"minut": 1, "minuty": 1, "minuta": 1, "min": 1, "m": 1,
	},
	joiners:    []string{"i"},
	dueMarkers: []string{"termin", "do"},
}
