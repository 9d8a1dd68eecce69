package i18n

// Dictionary holds every UI string for one locale.
type Dictionary struct {
	Nav        NavStrings
	Auth       AuthStrings
	Home       HomeStrings
	Articles   ArticleStrings
	Categories map[Category]string
	Sidebar    SidebarStrings
	Profile    ProfileStrings
	Common     CommonStrings
}

type NavStrings struct {
	Home       string
	Articles   string
	Login      string
	Signup     string
	Logout     string
	Profile    string
	Categories string
}

type AuthStrings struct {
	Email            string
	Password         string
	ConfirmPassword  string
	LoginTitle       string
	SignupTitle      string
	LoginButton      string
	SignupButton     string
	NoAccount        string
	HasAccount       string
	SignupLink       string
	LoginLink        string
	EmailRequired    string
	PasswordRequired string
	PasswordMismatch string
	LoginError       string
	SignupError      string
}

type HomeStrings struct {
	Title         string
	Subtitle      string
	ExploreButton string
	LoginPrompt   string
}

type ArticleStrings struct {
	Title       string
	NoResults   string
	ReadMore    string
	PublishedOn string
}

type SidebarStrings struct {
	Title           string
	AllCategories   string
	RelatedArticles string
	NoArticles      string
}

type ProfileStrings struct {
	Title             string
	PreferredLanguage string
	UpdateButton      string
	Updated           string
}

type CommonStrings struct {
	Welcome string
	Error   string
	Success string
}

// ForLocale returns the dictionary for the given locale, falling back to
// English for anything outside the supported set. It never fails.
func ForLocale(l Locale) *Dictionary {
	if d, ok := dictionaries[l]; ok {
		return d
	}
	return dictionaries[LocaleEN]
}

// CategoryLabel returns the localized label for a category key.
func CategoryLabel(l Locale, c Category) string {
	d := ForLocale(l)
	if label, ok := d.Categories[c]; ok {
		return label
	}
	return d.Categories[CategoryAll]
}

var dictionaries = map[Locale]*Dictionary{
	LocaleEN: {
		Nav: NavStrings{
			Home:       "Home",
			Articles:   "Articles",
			Login:      "Login",
			Signup:     "Sign Up",
			Logout:     "Logout",
			Profile:    "Profile",
			Categories: "Categories",
		},
		Auth: AuthStrings{
			Email:            "Email",
			Password:         "Password",
			ConfirmPassword:  "Confirm Password",
			LoginTitle:       "Welcome Back",
			SignupTitle:      "Create Account",
			LoginButton:      "Sign In",
			SignupButton:     "Create Account",
			NoAccount:        "Don't have an account?",
			HasAccount:       "Already have an account?",
			SignupLink:       "Sign up here",
			LoginLink:        "Sign in here",
			EmailRequired:    "Email is required",
			PasswordRequired: "Password is required",
			PasswordMismatch: "Passwords do not match",
			LoginError:       "Invalid email or password",
			SignupError:      "Could not create account",
		},
		Home: HomeStrings{
			Title:         "Patent Article Aggregator",
			Subtitle:      "Discover the latest innovations and patent insights from around the world",
			ExploreButton: "Explore Articles",
			LoginPrompt:   "Sign in to access premium content",
		},
		Articles: ArticleStrings{
			Title:       "Patent Articles",
			NoResults:   "No articles found",
			ReadMore:    "Read More",
			PublishedOn: "Published on",
		},
		Categories: map[Category]string{
			CategoryAll:                 "All Categories",
			CategoryCarbon:              "Carbon Technology",
			CategoryBattery:             "Battery Innovation",
			CategoryEngineeringPlastics: "Engineering Plastics",
			CategoryMetalProcessing:     "Metal Processing",
		},
		Sidebar: SidebarStrings{
			Title:           "Categories",
			AllCategories:   "All Categories",
			RelatedArticles: "Related Articles",
			NoArticles:      "No articles available",
		},
		Profile: ProfileStrings{
			Title:             "Profile Settings",
			PreferredLanguage: "Preferred Language",
			UpdateButton:      "Update Profile",
			Updated:           "Profile updated successfully",
		},
		Common: CommonStrings{
			Welcome: "Welcome",
			Error:   "An error occurred",
			Success: "Success",
		},
	},
	LocaleJA: {
		Nav: NavStrings{
			Home:       "ホーム",
			Articles:   "記事",
			Login:      "ログイン",
			Signup:     "新規登録",
			Logout:     "ログアウト",
			Profile:    "プロフィール",
			Categories: "カテゴリー",
		},
		Auth: AuthStrings{
			Email:            "メールアドレス",
			Password:         "パスワード",
			ConfirmPassword:  "パスワード確認",
			LoginTitle:       "お帰りなさい",
			SignupTitle:      "アカウント作成",
			LoginButton:      "ログイン",
			SignupButton:     "アカウント作成",
			NoAccount:        "アカウントをお持ちでないですか？",
			HasAccount:       "すでにアカウントをお持ちですか？",
			SignupLink:       "新規登録はこちら",
			LoginLink:        "ログインはこちら",
			EmailRequired:    "メールアドレスが必要です",
			PasswordRequired: "パスワードが必要です",
			PasswordMismatch: "パスワードが一致しません",
			LoginError:       "メールアドレスまたはパスワードが無効です",
			SignupError:      "アカウントを作成できませんでした",
		},
		Home: HomeStrings{
			Title:         "特許記事アグリゲーター",
			Subtitle:      "世界中の最新イノベーションと特許インサイトを発見",
			ExploreButton: "記事を探す",
			LoginPrompt:   "プレミアムコンテンツにアクセスするにはサインインしてください",
		},
		Articles: ArticleStrings{
			Title:       "特許記事",
			NoResults:   "記事が見つかりません",
			ReadMore:    "続きを読む",
			PublishedOn: "公開日",
		},
		Categories: map[Category]string{
			CategoryAll:                 "すべてのカテゴリー",
			CategoryCarbon:              "カーボン技術",
			CategoryBattery:             "バッテリー革新",
			CategoryEngineeringPlastics: "エンジニアリングプラスチック",
			CategoryMetalProcessing:     "金属加工",
		},
		Sidebar: SidebarStrings{
			Title:           "カテゴリー",
			AllCategories:   "すべてのカテゴリー",
			RelatedArticles: "関連記事",
			NoArticles:      "利用可能な記事はありません",
		},
		Profile: ProfileStrings{
			Title:             "プロフィール設定",
			PreferredLanguage: "優先言語",
			UpdateButton:      "プロフィールを更新",
			Updated:           "プロフィールが正常に更新されました",
		},
		Common: CommonStrings{
			Welcome: "ようこそ",
			Error:   "エラーが発生しました",
			Success: "成功",
		},
	},
	LocaleZH: {
		Nav: NavStrings{
			Home:       "首页",
			Articles:   "文章",
			Login:      "登录",
			Signup:     "注册",
			Logout:     "登出",
			Profile:    "个人资料",
			Categories: "分类",
		},
		Auth: AuthStrings{
			Email:            "电子邮件",
			Password:         "密码",
			ConfirmPassword:  "确认密码",
			LoginTitle:       "欢迎回来",
			SignupTitle:      "创建账户",
			LoginButton:      "登录",
			SignupButton:     "创建账户",
			NoAccount:        "还没有账户？",
			HasAccount:       "已有账户？",
			SignupLink:       "在此注册",
			LoginLink:        "在此登录",
			EmailRequired:    "需要电子邮件",
			PasswordRequired: "需要密码",
			PasswordMismatch: "密码不匹配",
			LoginError:       "电子邮件或密码无效",
			SignupError:      "无法创建账户",
		},
		Home: HomeStrings{
			Title:         "专利文章聚合器",
			Subtitle:      "发现来自世界各地的最新创新和专利见解",
			ExploreButton: "浏览文章",
			LoginPrompt:   "登录以访问高级内容",
		},
		Articles: ArticleStrings{
			Title:       "专利文章",
			NoResults:   "未找到文章",
			ReadMore:    "阅读更多",
			PublishedOn: "发布于",
		},
		Categories: map[Category]string{
			CategoryAll:                 "全部分类",
			CategoryCarbon:              "碳技术",
			CategoryBattery:             "电池创新",
			CategoryEngineeringPlastics: "工程塑料",
			CategoryMetalProcessing:     "金属加工",
		},
		Sidebar: SidebarStrings{
			Title:           "分类",
			AllCategories:   "全部分类",
			RelatedArticles: "相关文章",
			NoArticles:      "暂无文章",
		},
		Profile: ProfileStrings{
			Title:             "个人资料设置",
			PreferredLanguage: "首选语言",
			UpdateButton:      "更新个人资料",
			Updated:           "个人资料更新成功",
		},
		Common: CommonStrings{
			Welcome: "欢迎",
			Error:   "发生错误",
			Success: "成功",
		},
	},
}
