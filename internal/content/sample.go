package content

import (
	"github.com/patentwire/patentwire/internal/domain"
	"github.com/patentwire/patentwire/internal/i18n"
)

// SampleArticles returns the built-in article set served when the content
// source is unconfigured or unreachable. The set is deterministic; a fresh
// copy is returned so callers can filter and sort freely.
func SampleArticles() []domain.Article {
	out := make([]domain.Article, len(sampleArticles))
	copy(out, sampleArticles)
	return out
}

var sampleArticles = []domain.Article{
	{
		ID:    "1",
		Title: domain.LocalizedText{EN: "Solid-State Battery Manufacturing Patent"},
		Summary: domain.LocalizedText{
			EN: "A newly patented production process for solid-state cells triples energy density over lithium-ion while reusing existing manufacturing lines.",
		},
		Properties: domain.LocalizedList{
			EN: []string{"3x energy density over lithium-ion", "Compatible with existing production lines", "Target commercialization 2026"},
		},
		CoverImage:    "https://images.pexels.com/photos/110844/pexels-photo-110844.jpeg?auto=compress&cs=tinysrgb&w=1200",
		PublishedDate: "2025-12-01",
		Category:      i18n.CategoryBattery,
		Tags:          []string{"Energy", "Battery", "Electric Vehicles"},
		Author:        "Dr. Emily Rodriguez",
		Language:      i18n.LocaleEN,
	},
	{
		ID:    "2",
		Title: domain.LocalizedText{JA: "次世代バッテリー技術の特許"},
		Summary: domain.LocalizedText{
			JA: "固体電池の新しい製造方法が特許取得。従来比3倍のエネルギー密度を実現し、電気自動車の航続距離を大幅延長。",
		},
		Properties: domain.LocalizedList{
			JA: []string{"エネルギー密度が従来比3倍", "既存の生産設備を活用可能", "2026年中の実用化を目指す"},
		},
		CoverImage:    "https://images.pexels.com/photos/2800832/pexels-photo-2800832.jpeg?auto=compress&cs=tinysrgb&w=1200",
		PublishedDate: "2025-11-25",
		Category:      i18n.CategoryBattery,
		Tags:          []string{"Energy", "Battery", "Electric Vehicles"},
		Author:        "田中 博士",
		Language:      i18n.LocaleJA,
	},
	{
		ID:    "3",
		Title: domain.LocalizedText{EN: "Carbon Fiber Recycling Breakthrough"},
		Summary: domain.LocalizedText{
			EN: "A patented low-temperature pyrolysis method recovers aerospace-grade carbon fiber from composite waste at a fraction of current cost.",
		},
		Properties: domain.LocalizedList{
			EN: []string{"Recovers aerospace-grade fiber", "60% lower processing cost", "Closed-loop composite recycling"},
		},
		CoverImage:    "https://images.pexels.com/photos/257736/pexels-photo-257736.jpeg?auto=compress&cs=tinysrgb&w=1200",
		PublishedDate: "2025-11-20",
		Category:      i18n.CategoryCarbon,
		Tags:          []string{"Carbon Fiber", "Recycling", "Materials Science"},
		Author:        "Dr. James Wilson",
		Language:      i18n.LocaleEN,
	},
	{
		ID:    "4",
		Title: domain.LocalizedText{ZH: "碳捕集材料专利突破"},
		Summary: domain.LocalizedText{
			ZH: "新型多孔碳材料获得专利，二氧化碳吸附容量是现有材料的两倍，为工业碳捕集提供低成本方案。",
		},
		Properties: domain.LocalizedList{
			ZH: []string{"吸附容量翻倍", "可在低温下再生", "适用于工业烟气处理"},
		},
		CoverImage:    "https://images.pexels.com/photos/459728/pexels-photo-459728.jpeg?auto=compress&cs=tinysrgb&w=1200",
		PublishedDate: "2025-11-15",
		Category:      i18n.CategoryCarbon,
		Tags:          []string{"Carbon Capture", "Sustainability"},
		Author:        "王博士",
		Language:      i18n.LocaleZH,
	},
	{
		ID:    "5",
		Title: domain.LocalizedText{EN: "High-Heat Engineering Plastic Patent"},
		Summary: domain.LocalizedText{
			EN: "A new polymer blend withstands sustained temperatures above 300°C, opening engineering plastics to under-hood and aerospace applications.",
		},
		Properties: domain.LocalizedList{
			EN: []string{"Stable above 300°C", "Injection-moldable on standard tooling", "Replaces machined aluminum parts"},
		},
		CoverImage:    "https://images.pexels.com/photos/3825581/pexels-photo-3825581.jpeg?auto=compress&cs=tinysrgb&w=1200",
		PublishedDate: "2025-11-10",
		Category:      i18n.CategoryEngineeringPlastics,
		Tags:          []string{"Polymers", "Materials Science", "Aerospace"},
		Author:        "Prof. Michael Johnson",
		Language:      i18n.LocaleEN,
	},
	{
		ID:    "6",
		Title: domain.LocalizedText{JA: "生分解性エンジニアリングプラスチックの特許"},
		Summary: domain.LocalizedText{
			JA: "海洋環境で数ヶ月以内に分解する新型ポリマーが特許取得。商用耐久性を維持しながら海洋プラスチック問題に対応。",
		},
		Properties: domain.LocalizedList{
			JA: []string{"海水中で6ヶ月以内に分解", "従来プラスチックと同等の強度", "包装用途で実証試験中"},
		},
		CoverImage:    "https://images.pexels.com/photos/1482803/pexels-photo-1482803.jpeg?auto=compress&cs=tinysrgb&w=1200",
		PublishedDate: "2025-11-05",
		Category:      i18n.CategoryEngineeringPlastics,
		Tags:          []string{"Environment", "Polymers", "Sustainability"},
		Author:        "佐藤 博士",
		Language:      i18n.LocaleJA,
	},
	{
		ID:    "7",
		Title: domain.LocalizedText{EN: "Laser-Assisted Metal Forming Patent"},
		Summary: domain.LocalizedText{
			EN: "A patented hybrid process combines laser heating with incremental forming to shape high-strength alloys without dies.",
		},
		Properties: domain.LocalizedList{
			EN: []string{"Die-less forming of titanium alloys", "Cuts tooling cost for small batches", "Surface finish comparable to machining"},
		},
		CoverImage:    "https://images.pexels.com/photos/2381463/pexels-photo-2381463.jpeg?auto=compress&cs=tinysrgb&w=1200",
		PublishedDate: "2025-10-28",
		Category:      i18n.CategoryMetalProcessing,
		Tags:          []string{"Manufacturing", "Lasers", "Alloys"},
		Author:        "Dr. Sarah Chen",
		Language:      i18n.LocaleEN,
	},
	{
		ID:    "8",
		Title: domain.LocalizedText{ZH: "金属3D打印工艺专利"},
		Summary: domain.LocalizedText{
			ZH: "新型粉末床熔融控制算法获得专利，将金属增材制造的缺陷率降低一个数量级，适用于航空关键部件。",
		},
		Properties: domain.LocalizedList{
			ZH: []string{"缺陷率降低90%", "支持钛合金与高温合金", "已通过航空件疲劳测试"},
		},
		CoverImage:    "https://images.pexels.com/photos/1145434/pexels-photo-1145434.jpeg?auto=compress&cs=tinysrgb&w=1200",
		PublishedDate: "2025-10-20",
		Category:      i18n.CategoryMetalProcessing,
		Tags:          []string{"Additive Manufacturing", "Aerospace", "Alloys"},
		Author:        "李博士",
		Language:      i18n.LocaleZH,
	},
}
