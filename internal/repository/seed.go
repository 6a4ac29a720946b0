package repository

import (
	"github.com/shopspring/decimal"

	"github.com/aaamo/storefront-api/internal/model"
)

// sampleProducts is the catalog a fresh installation starts with.
func sampleProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "جراب سيليكون فاخر لآيفون 15 برو",
			Description: "جراب سيليكون عالي الجودة يوفر حماية ممتازة وملمس ناعم لهاتف آيفون 15 برو. متوفر بألوان متعددة.",
			Price:       decimal.NewFromInt(250),
			Images:      []string{"https://picsum.photos/seed/case1/400/400", "https://picsum.photos/seed/case1_alt/400/400"},
			Category:    "جرابات",
		},
		{
			ID:          "2",
			Name:        "واقي شاشة زجاجي لسامسونج جالاكسي S24 ألترا",
			Description: "واقي شاشة من الزجاج المقوى بدرجة صلابة 9H، مقاوم للخدوش والصدمات، ويحافظ على وضوح الشاشة.",
			Price:       decimal.NewFromInt(180),
			Images:      []string{"https://picsum.photos/seed/screenprotector1/400/400"},
			Category:    "واقيات شاشة",
		},
		{
			ID:          "3",
			Name:        "شاحن سريع 65 واط USB-C PD",
			Description: "شاحن جداري بتقنية الشحن السريع Power Delivery، يدعم شحن اللابتوبات والهواتف المتوافقة بقوة تصل إلى 65 واط.",
			Price:       decimal.NewFromInt(450),
			Images:      []string{"https://picsum.photos/seed/charger1/400/400"},
			Category:    "شواحن",
		},
		{
			ID:          "4",
			Name:        "سماعات أذن لاسلكية بلوتوث 5.3",
			Description: "سماعات أذن لاسلكية بصوت نقي وجودة عالية، تدعم بلوتوث 5.3 وتوفر عمر بطارية طويل.",
			Price:       decimal.NewFromInt(600),
			Images:      []string{"https://picsum.photos/seed/earbuds1/400/400", "https://picsum.photos/seed/earbuds1_alt/400/400"},
			Category:    "إكسسوارات صوت",
		},
		{
			ID:          "5",
			Name:        "كابل شحن USB-C إلى Lightning معتمد MFi",
			Description: "كابل شحن ونقل بيانات معتمد من آبل، يضمن التوافق والأداء الأمثل مع أجهزة آيفون وآيباد.",
			Price:       decimal.NewFromInt(220),
			Images:      []string{"https://picsum.photos/seed/cable1/400/400"},
			Category:    "كوابل",
		},
		{
			ID:          "6",
			Name:        "حامل هاتف مغناطيسي للسيارة",
			Description: "حامل هاتف قوي للسيارة يتم تثبيته على فتحة التهوية، يوفر تثبيتًا آمنًا وسهل الاستخدام.",
			Price:       decimal.NewFromInt(150),
			Images:      []string{"https://picsum.photos/seed/carholder1/400/400"},
			Category:    "حوامل",
		},
		{
			ID:          "7",
			Name:        "جراب شفاف مقاوم للصدمات لـ OnePlus 12",
			Description: "جراب شفاف يبرز تصميم الهاتف مع توفير حماية قوية ضد السقوط والصدمات.",
			Price:       decimal.NewFromInt(200),
			Images:      []string{"https://picsum.photos/seed/case2/400/400"},
			Category:    "جرابات",
		},
		{
			ID:          "8",
			Name:        "باور بانك 20000 مللي أمبير",
			Description: "بطارية متنقلة بسعة كبيرة 20000 مللي أمبير، تدعم الشحن السريع لأجهزة متعددة.",
			Price:       decimal.NewFromInt(750),
			Images:      []string{"https://picsum.photos/seed/powerbank1/400/400"},
			Category:    "شواحن",
		},
	}
}
