package nlparser

// Japanese, Chinese and Korean keywords attach to neighbouring words without
// spaces (or with particles), so these packs match without word boundaries.

var japanesePack = packSpec{
	wordBoundaries: false,
	priority: map[string]string{
		"緊急":   PriorityUrgent,
		"至急":   PriorityUrgent,
		"優先度高": PriorityHigh,
		"重要":   PriorityHigh,
		"優先度中": PriorityNormal,
		"優先度低": PriorityLow,
	},
	status: map[string]string{
		"未着手":   StatusOpen,
		"やること":  StatusOpen,
		"進行中":   StatusInProgress,
		"対応中":   StatusInProgress,
		"完了":    StatusDone,
		"済み":    StatusDone,
		"キャンセル": StatusCancelled,
		"中止":    StatusCancelled,
		"保留":    StatusWaiting,
		"待機中":   StatusWaiting,
		"ブロック":  StatusWaiting,
	},
	recurrenceUnits: map[string]Frequency{
		"日":  Daily,
		"週":  Weekly,
		"週間": Weekly,
		"ヶ月": Monthly,
		"か月": Monthly,
		"カ月": Monthly,
		"月":  Monthly,
	},
	recurrence: []RecurrencePattern{
		{Kind: KindRecurrenceInterval, Pattern: `{n}\s*{unit}ごと`},
		{Kind: KindRecurrenceOther, Pattern: `隔{unit}`},
		{Kind: KindRecurrenceUnit, Pattern: `毎{unit}`},
		{Kind: KindRecurrenceFixed, Pattern: `日次`, Freq: Daily},
		{Kind: KindRecurrenceFixed, Pattern: `週次`, Freq: Weekly},
		{Kind: KindRecurrenceFixed, Pattern: `月次`, Freq: Monthly},
	},
	durationUnits: map[string]int{
		"時間": 60,
		"分":  1,
	},
	dueMarkers: []string{"締切", "締め切り", "期限"},
}

var chinesePack = packSpec{
	wordBoundaries: false,
	priority: map[string]string{
		"紧急":    PriorityUrgent,
		"高优先级":  PriorityHigh,
		"重要":    PriorityHigh,
		"中优先级":  PriorityNormal,
		"普通优先级": PriorityNormal,
		"低优先级":  PriorityLow,
	},
	status: map[string]string{
		"待办":  StatusOpen,
		"进行中": StatusInProgress,
		"完成":  StatusDone,
		"已完成": StatusDone,
		"取消":  StatusCancelled,
		"已取消": StatusCancelled,
		"等待":  StatusWaiting,
		"阻塞":  StatusWaiting,
		"受阻":  StatusWaiting,
	},
	recurrenceUnits: map[string]Frequency{
		"天":  Daily,
		"日":  Daily,
		"周":  Weekly,
		"星期": Weekly,
		"个月": Monthly,
		"月":  Monthly,
	},
	recurrence: []RecurrencePattern{
		{Kind: KindRecurrenceInterval, Pattern: `每\s*{n}\s*{unit}`},
		{Kind: KindRecurrenceOther, Pattern: `隔{unit}`},
		{Kind: KindRecurrenceUnit, Pattern: `每{unit}`},
		{Kind: KindRecurrenceFixed, Pattern: `天天`, Freq: Daily},
	},
	durationUnits: map[string]int{
		"个小时": 60,
		"小时":  60,
		"钟头":  60,
		"分钟":  1,
	},
	dueMarkers: []string{"截止", "截止日期", "到期"},
}

var koreanPack = packSpec{
	wordBoundaries: false,
	priority: map[string]string{
		"긴급":      PriorityUrgent,
		"급함":      PriorityUrgent,
		"높은 우선순위": PriorityHigh,
		"중요":      PriorityHigh,
		"보통 우선순위": PriorityNormal,
		"낮은 우선순위": PriorityLow,
	},
	status: map[string]string{
		"할 일":  StatusOpen,
		"진행 중": StatusInProgress,
		"진행중":  StatusInProgress,
		"완료":   StatusDone,
		"취소":   StatusCancelled,
		"대기 중": StatusWaiting,
		"대기":   StatusWaiting,
		"차단":   StatusWaiting,
	},
	recurrenceUnits: map[string]Frequency{
		"일":  Daily,
		"날":  Daily,
		"주":  Weekly,
		"주일": Weekly,
		"개월": Monthly,
		"달":  Monthly,
		"월":  Monthly,
	},
	recurrence: []RecurrencePattern{
		{Kind: KindRecurrenceInterval, Pattern: `{n}\s*{unit}마다`},
		{Kind: KindRecurrenceOther, Pattern: `격{unit}`},
		{Kind: KindRecurrenceUnit, Pattern: `매{unit}`},
		{Kind: KindRecurrenceFixed, Pattern: `날마다`, Freq: Daily},
	},
	durationUnits: map[string]int{
		"시간": 60,
		"분":  1,
	},
	dueMarkers: []string{"마감", "기한"},
}
