package i18n

var catalog = map[Language]map[string]string{
	English: {
		"app.title":       "Proactive Task Manager",
		"app.description": "Organize your tasks efficiently",

		"action.add-task":        "Add Task",
		"action.clear-completed": "Clear Completed",
		"action.create":          "Create Task",
		"action.save":            "Save Changes",
		"action.cancel":          "Cancel",
		"action.edit":            "Edit",
		"action.delete":          "Delete",

		"task.title":       "Title",
		"task.description": "Description",
		"task.priority":    "Priority",
		"task.status":      "Status",
		"task.dueDate":     "Due Date",
		"task.tags":        "Tags",
		"task.create":      "Create New Task",
		"task.edit":        "Edit Task",

		"priority.high":   "High",
		"priority.medium": "Medium",
		"priority.low":    "Low",

		"status.all":         "All",
		"status.pending":     "Pending",
		"status.in-progress": "In Progress",
		"status.completed":   "Completed",

		"filter.search":         "Search tasks...",
		"filter.status":         "Status",
		"filter.priority":       "Priority",
		"filter.all-statuses":   "All Statuses",
		"filter.all-priorities": "All Priorities",
		"filter.sort-asc":       "Oldest first",
		"filter.sort-desc":      "Newest first",

		"tab.all":         "All",
		"tab.pending":     "Pending",
		"tab.in-progress": "In Progress",
		"tab.completed":   "Completed",

		"view.list":  "List",
		"view.board": "Board",

		"theme.light":  "Light",
		"theme.dark":   "Dark",
		"theme.system": "System",

		"empty.no-tasks":       "No tasks found",
		"empty.adjust-filters": "Try adjusting your filters",
		"empty.create-new":     "Create a new task to get started",

		"time.just-now":    "just now",
		"time.minutes-ago": "%d min ago",
		"time.hours-ago":   "%d h ago",
		"time.days-ago":    "%d days ago",
		"time.in-minutes":  "in %d min",
		"time.in-hours":    "in %d h",
		"time.in-days":     "in %d days",
		"task.overdue":     "Overdue",
		"task.created":     "Created",
		"task.move-up":     "Move up",
		"task.move-down":   "Move down",
		"action.language":  "العربية",
		"action.theme":     "Toggle theme",
	},
	Arabic: {
		"app.title":       "مدير المهام الاستباقي",
		"app.description": "نظم مهامك بكفاءة",

		"action.add-task":        "إضافة مهمة",
		"action.clear-completed": "مسح المكتملة",
		"action.create":          "إنشاء مهمة",
		"action.save":            "حفظ التغييرات",
		"action.cancel":          "إلغاء",
		"action.edit":            "تعديل",
		"action.delete":          "حذف",

		"task.title":       "العنوان",
		"task.description": "الوصف",
		"task.priority":    "الأولوية",
		"task.status":      "الحالة",
		"task.dueDate":     "تاريخ الاستحقاق",
		"task.tags":        "العلامات",
		"task.create":      "إنشاء مهمة جديدة",
		"task.edit":        "تعديل المهمة",

		"priority.high":   "عالية",
		"priority.medium": "متوسطة",
		"priority.low":    "منخفضة",

		"status.all":         "الكل",
		"status.pending":     "قيد الانتظار",
		"status.in-progress": "قيد التنفيذ",
		"status.completed":   "مكتملة",

		"filter.search":         "البحث عن مهام...",
		"filter.status":         "الحالة",
		"filter.priority":       "الأولوية",
		"filter.all-statuses":   "جميع الحالات",
		"filter.all-priorities": "جميع الأولويات",
		"filter.sort-asc":       "الأقدم أولاً",
		"filter.sort-desc":      "الأحدث أولاً",

		"tab.all":         "الكل",
		"tab.pending":     "قيد الانتظار",
		"tab.in-progress": "قيد التنفيذ",
		"tab.completed":   "مكتملة",

		"view.list":  "قائمة",
		"view.board": "لوحة",

		"theme.light":  "فاتح",
		"theme.dark":   "داكن",
		"theme.system": "النظام",

		"empty.no-tasks":       "لا توجد مهام",
		"empty.adjust-filters": "حاول تعديل عوامل التصفية",
		"empty.create-new":     "أنشئ مهمة جديدة للبدء",

		"time.just-now":    "الآن",
		"time.minutes-ago": "منذ %d دقيقة",
		"time.hours-ago":   "منذ %d ساعة",
		"time.days-ago":    "منذ %d يوم",
		"time.in-minutes":  "خلال %d دقيقة",
		"time.in-hours":    "خلال %d ساعة",
		"time.in-days":     "خلال %d يوم",
		"task.overdue":     "متأخرة",
		"task.created":     "أنشئت",
		"task.move-up":     "تحريك لأعلى",
		"task.move-down":   "تحريك لأسفل",
		"action.language":  "English",
		"action.theme":     "تبديل المظهر",
	},
}
