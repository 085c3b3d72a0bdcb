package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// initAr will init ar support.
func initAr(tag language.Tag) {
	_ = message.SetString(tag, "welcome to the dictionary api", "مرحباً بك في واجهة برمجة تطبيقات المعجم الموسوعي للمعاني")
	_ = message.SetString(tag, "main meaning not found", "المعنى غير موجود")
	_ = message.SetString(tag, "main meaning already exists", "المعنى موجود بالفعل")
	_ = message.SetString(tag, "main meaning deleted", "تم حذف المعنى")
	_ = message.SetString(tag, "parent main meaning not found", "المعنى الرئيسي غير موجود")
	_ = message.SetString(tag, "sub meaning not found", "المعنى الفرعي غير موجود")
	_ = message.SetString(tag, "sub meaning deleted", "تم حذف المعنى الفرعي")
	_ = message.SetString(tag, "reference not found", "الشاهد غير موجود")
	_ = message.SetString(tag, "reference deleted", "تم حذف الشاهد")
	_ = message.SetString(tag, "comment not found", "التعليق غير موجود")
	_ = message.SetString(tag, "invalid data", "بيانات غير صالحة")
	_ = message.SetString(tag, "invalid action, must be \"like\" or \"dislike\"", "الإجراء غير صالح، يجب أن يكون \"like\" أو \"dislike\"")
	_ = message.SetString(tag, "search query required", "يرجى تقديم استعلام البحث")
	_ = message.SetString(tag, "invalid letter %s", "الحرف %s غير صالح")
	_ = message.SetString(tag, "invalid reference type %s", "نوع الشاهد %s غير صالح")
	_ = message.SetString(tag, "field %s is required", "الحقل %s مطلوب")
	_ = message.SetString(tag, "field %s is invalid", "الحقل %s غير صالح")
	_ = message.SetString(tag, "invalid id %s", "المعرّف %s غير صالح")
}

// initEn will init en support.
func initEn(tag language.Tag) {
	_ = message.SetString(tag, "welcome to the dictionary api", "Welcome to the encyclopedic dictionary of meanings API")
	_ = message.SetString(tag, "main meaning not found", "main meaning not found")
	_ = message.SetString(tag, "main meaning already exists", "main meaning already exists")
	_ = message.SetString(tag, "main meaning deleted", "main meaning deleted")
	_ = message.SetString(tag, "parent main meaning not found", "parent main meaning not found")
	_ = message.SetString(tag, "sub meaning not found", "sub meaning not found")
	_ = message.SetString(tag, "sub meaning deleted", "sub meaning deleted")
	_ = message.SetString(tag, "reference not found", "reference not found")
	_ = message.SetString(tag, "reference deleted", "reference deleted")
	_ = message.SetString(tag, "comment not found", "comment not found")
	_ = message.SetString(tag, "invalid data", "invalid data")
	_ = message.SetString(tag, "invalid action, must be \"like\" or \"dislike\"", "invalid action, must be \"like\" or \"dislike\"")
	_ = message.SetString(tag, "search query required", "please provide a search query")
	_ = message.SetString(tag, "invalid letter %s", "invalid letter %s")
	_ = message.SetString(tag, "invalid reference type %s", "invalid reference type %s")
	_ = message.SetString(tag, "field %s is required", "field %s is required")
	_ = message.SetString(tag, "field %s is invalid", "field %s is invalid")
	_ = message.SetString(tag, "invalid id %s", "invalid id %s")
}
