package cmd

var (
	configPath string

	providers    []string
	addResult    bool
	addCategory  string
	markCategory string

	filter       string
	sortingMode  string
	showChapters bool

	chapterNumbers string
	removeContent  bool
	force          bool

	unread bool

	exportFormat    string
	exportDirectory string
	naming          string
)

func initRootFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"specifies the path to your config file",
	)
}

func initSearchFlags() {
	searchCmd.Flags().StringSliceVarP(
		&providers,
		"provider",
		"p",
		nil,
		"limits the search to these providers, defaults to the enabled providers",
	)
	searchCmd.Flags().BoolVarP(
		&addResult,
		"add",
		"a",
		false,
		"pick one of the results and add it to the library",
	)
}

func initAddFlags() {
	addCmd.Flags().StringVar(
		&addCategory,
		"category",
		"reading",
		"category of the novel: reading or completed",
	)
}

func initListFlags() {
	listCmd.Flags().StringVarP(
		&filter,
		"filter",
		"f",
		"",
		"filters novels: all, reading, completed, unreadChapters, notStarted. defaults to the saved setting",
	)
	listCmd.Flags().StringVarP(
		&sortingMode,
		"sort",
		"s",
		"",
		"sorts novels: title, dateAdded, dateUpdated. defaults to the saved setting",
	)
	listCmd.Flags().BoolVar(
		&showChapters,
		"chapters",
		false,
		"lists the chapters of the given novel instead",
	)
}

func initDownloadFlags() {
	downloadCmd.Flags().StringVarP(
		&chapterNumbers,
		"chapters",
		"C",
		"",
		"specifies the chapter numbers you want to download, e.g. 1-10,15. default: all",
	)
	downloadCmd.Flags().BoolVar(
		&removeContent,
		"remove",
		false,
		"removes downloaded content instead of downloading it",
	)
	downloadCmd.Flags().BoolVar(
		&force,
		"force",
		false,
		"downloads chapters again even if they already have content",
	)
}

func initMarkFlags() {
	markCmd.Flags().StringVarP(
		&chapterNumbers,
		"chapters",
		"C",
		"",
		"specifies the chapter numbers to mark, e.g. 1-10,15",
	)
	markCmd.Flags().BoolVar(
		&unread,
		"unread",
		false,
		"marks the chapters as unread",
	)
	markCmd.Flags().StringVar(
		&markCategory,
		"category",
		"",
		"moves the novel to a category: reading or completed",
	)

	markCmd.MarkFlagsOneRequired("chapters", "category")
}

func initExportFlags() {
	exportCmd.Flags().StringVarP(
		&exportFormat,
		"format",
		"f",
		"epub",
		"export format: epub or pdf",
	)
	exportCmd.Flags().StringVarP(
		&exportDirectory,
		"output",
		"o",
		"",
		"specifies the directory to export to, defaults to exportLocation",
	)
	exportCmd.Flags().StringVarP(
		&chapterNumbers,
		"chapters",
		"C",
		"",
		"specifies the chapter numbers to export. default: all downloaded",
	)
	exportCmd.Flags().StringVarP(
		&naming,
		"naming",
		"n",
		"",
		"specifies the naming template for chapter headings, defaults to namingTemplate",
	)
}
