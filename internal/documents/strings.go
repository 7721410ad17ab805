package documents

import "github.com/uptown-october/uptown-docs/internal/locale"

// textSet carries every fixed string rendered on the documents for one
// language. The disclaimer, brand, and terms values are contractual:
// printed archives and downstream systems compare them byte for byte, so
// any edit here is a breaking change.
type textSet struct {
	Brand string

	OfferTitle       string
	GeneratedAtLabel string
	OfferDateLabel   string
	FirstPaymentLbl  string
	UnitLabel        string
	ConsultantLabel  string
	Disclaimer       string

	SummaryTitle string
	Base         string
	Garden       string
	Roof         string
	Storage      string
	Garage       string
	Maintenance  string
	TotalExcl    string
	TotalIncl    string

	BuyersTitle  string
	BuyerTitle   string
	NoData       string
	NoClientData string

	ColMonth  string
	ColLabel  string
	ColAmount string
	ColDate   string
	ColWords  string

	BuyerName      string
	Nationality    string
	IDOrPassport   string
	IDIssueDate    string
	BirthDate      string
	Address        string
	PhonePrimary   string
	PhoneSecondary string
	Email          string

	ReservationTitle string
	ProjectSubtitle  string
	IntroFormat      string // two substitutions: day name, then date

	ClientInfoTitle string
	UnitInfoTitle   string
	FinancialTitle  string
	TermsTitle      string

	UnitType    string
	UnitArea    string
	AreaSuffix  string
	UnitCode    string
	Building    string
	BlockSector string
	Zone        string
	ProjectNote string

	ItemTotal       string
	ItemDownPayment string
	ItemPreliminary string
	ItemPaid        string
	ItemDPRemaining string
	ItemRemaining   string
	ColItem         string

	Terms      [4]string
	Signatures [3]string
}

var englishText = textSet{
	Brand: "Uptown 6 October Financial System",

	OfferTitle:       "Client Offer",
	GeneratedAtLabel: "Generated at",
	OfferDateLabel:   "Offer date",
	FirstPaymentLbl:  "First payment",
	UnitLabel:        "Unit",
	ConsultantLabel:  "Consultant",
	Disclaimer:       "This document is not a contract and is generated for client viewing only. Values are indicative and subject to final contract.",

	SummaryTitle: "Unit Summary",
	Base:         "Base price",
	Garden:       "Garden",
	Roof:         "Roof",
	Storage:      "Storage",
	Garage:       "Garage",
	Maintenance:  "Maintenance deposit",
	TotalExcl:    "Total excl. maintenance",
	TotalIncl:    "Total incl. maintenance",

	BuyersTitle:  "Client Data",
	BuyerTitle:   "Buyer",
	NoData:       "No data",
	NoClientData: "No client data",

	ColMonth:  "Month",
	ColLabel:  "Installment",
	ColAmount: "Amount",
	ColDate:   "Due date",
	ColWords:  "Amount in words",

	BuyerName:      "Name",
	Nationality:    "Nationality",
	IDOrPassport:   "ID / Passport",
	IDIssueDate:    "ID issue date",
	BirthDate:      "Birth date",
	Address:        "Address",
	PhonePrimary:   "Phone",
	PhoneSecondary: "Alt. phone",
	Email:          "Email",

	ReservationTitle: "Unit Reservation Form",
	ProjectSubtitle:  "Uptown 6 October Project",
	IntroFormat:      "On %s dated %s, the undersigned reserved the unit described below subject to the terms and conditions stated in this form.",

	ClientInfoTitle: "Client Information",
	UnitInfoTitle:   "Unit Information",
	FinancialTitle:  "Financial Details",
	TermsTitle:      "Terms and Conditions",

	UnitType:    "Unit type",
	UnitArea:    "Area",
	AreaSuffix:  "m²",
	UnitCode:    "Unit code",
	Building:    "Building no.",
	BlockSector: "Block / Sector",
	Zone:        "Zone",
	ProjectNote: "Project",

	ItemTotal:       "Total unit price",
	ItemDownPayment: "Down payment",
	ItemPreliminary: "Preliminary reservation payment",
	ItemPaid:        "Paid amount",
	ItemDPRemaining: "Remaining of down payment",
	ItemRemaining:   "Remaining balance",
	ColItem:         "Item",

	Terms: [4]string{
		"This reservation form is valid for fourteen days from the reservation date; failure to sign the contract within this period cancels the reservation.",
		"The preliminary reservation payment is part of the down payment and is non-refundable should the client withdraw.",
		"This reservation is personal and may not be assigned or transferred to any third party before signing the contract.",
		"Unit specifications and prices become final only upon signing the official contract.",
	},
	Signatures: [3]string{"Client", "Property Consultant", "Financial Manager"},
}

var arabicText = textSet{
	Brand: "نظام شركة أبتاون 6 أكتوبر المالي",

	OfferTitle:       "عرض سعر للعميل",
	GeneratedAtLabel: "تاريخ الإصدار",
	OfferDateLabel:   "تاريخ العرض",
	FirstPaymentLbl:  "أول دفعة",
	UnitLabel:        "الوحدة",
	ConsultantLabel:  "الاستشاري",
	Disclaimer:       "هذا المستند ليس عقدًا وهو مُعد لعرض الأسعار للعميل فقط. قد تختلف القيم عند التعاقد النهائي.",

	SummaryTitle: "ملخص الوحدة",
	Base:         "السعر الأساسي",
	Garden:       "الحديقة",
	Roof:         "الروف",
	Storage:      "المخزن",
	Garage:       "الجراج",
	Maintenance:  "وديعة الصيانة",
	TotalExcl:    "الإجمالي بدون الصيانة",
	TotalIncl:    "الإجمالي شامل الصيانة",

	BuyersTitle:  "بيانات العميل",
	BuyerTitle:   "المشتري",
	NoData:       "لا توجد بيانات",
	NoClientData: "لا توجد بيانات للعميل",

	ColMonth:  "الشهر",
	ColLabel:  "الدفعة",
	ColAmount: "القيمة",
	ColDate:   "تاريخ الاستحقاق",
	ColWords:  "القيمة بالحروف",

	BuyerName:      "الاسم",
	Nationality:    "الجنسية",
	IDOrPassport:   "الرقم القومي / جواز السفر",
	IDIssueDate:    "تاريخ إصدار البطاقة",
	BirthDate:      "تاريخ الميلاد",
	Address:        "العنوان",
	PhonePrimary:   "الهاتف",
	PhoneSecondary: "هاتف إضافي",
	Email:          "البريد الإلكتروني",

	ReservationTitle: "نموذج حجز وحدة",
	ProjectSubtitle:  "مشروع أبتاون 6 أكتوبر",
	IntroFormat:      "في يوم %s الموافق %s قام الموقع أدناه بحجز الوحدة الموضحة بياناتها وفقًا للشروط والأحكام الواردة في هذا النموذج.",

	ClientInfoTitle: "بيانات العميل",
	UnitInfoTitle:   "بيانات الوحدة",
	FinancialTitle:  "البيانات المالية",
	TermsTitle:      "الشروط والأحكام",

	UnitType:    "نوع الوحدة",
	UnitArea:    "المساحة",
	AreaSuffix:  "م²",
	UnitCode:    "كود الوحدة",
	Building:    "رقم العمارة",
	BlockSector: "البلوك / القطاع",
	Zone:        "المنطقة",
	ProjectNote: "المشروع",

	ItemTotal:       "إجمالي سعر الوحدة",
	ItemDownPayment: "دفعة التعاقد",
	ItemPreliminary: "دفعة الحجز المبدئية",
	ItemPaid:        "المبلغ المسدد",
	ItemDPRemaining: "المتبقي من دفعة التعاقد",
	ItemRemaining:   "باقي قيمة الوحدة",
	ColItem:         "البيان",

	Terms: [4]string{
		"يسري نموذج الحجز هذا لمدة أربعة عشر يومًا من تاريخ الحجز، وفي حالة عدم التعاقد خلال هذه المدة يُعتبر الحجز لاغيًا.",
		"دفعة الحجز المبدئية جزء من دفعة التعاقد ولا تُرد في حالة عدول العميل.",
		"هذا الحجز شخصي ولا يجوز التنازل عنه أو نقله إلى الغير قبل توقيع العقد.",
		"تعتبر مواصفات الوحدة وأسعارها نهائية فقط عند توقيع العقد الرسمي.",
	},
	Signatures: [3]string{"العميل", "الاستشاري العقاري", "المدير المالي"},
}

// textFor selects the string set for the resolved language.
func textFor(lang locale.Lang) textSet {
	if lang == locale.Arabic {
		return arabicText
	}
	return englishText
}
