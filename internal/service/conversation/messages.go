package conversation

// Тексты бота. Клиенты салона общаются по-турецки
const (
	msgWelcome = `👋 Hoş geldiniz! Kuaför randevu sistemine hoş geldiniz.

📅 *Randevu almak için:* /randevu
❌ *Randevuyu iptal etmek için:* /iptal
❓ *Yardım için:* /yardim`

	msgHelp = `ℹ️ *Yardım Menüsü*

*Kullanılabilir Komutlar:*
📅 ` + "`/randevu`" + ` - Yeni randevu oluştur
❌ ` + "`/iptal`" + ` - Mevcut randevuyu iptal et
❓ ` + "`/yardim`" + ` - Bu yardım mesajını göster

*Nasıl Çalışır:*
1. ` + "`/randevu`" + ` yazın
2. Çalışan seçin
3. Tarih seçin
4. Müsait saatleri görün
5. Saat seçin
6. Randevunuzu onaylayın

Herhangi bir sorunuz varsa bizimle iletişime geçebilirsiniz!`

	msgFallback = "Lütfen yukarıdaki seçeneklerden birini seçin veya /randevu yazarak yeni bir randevu oluşturun."

	msgNoWorkers          = "❌ Şu anda müsait çalışan bulunmamaktadır. Lütfen daha sonra tekrar deneyin."
	msgChooseWorker       = "💇 Lütfen randevu almak istediğiniz çalışanı seçin:"
	msgChooseWorkerButton = "Çalışan Seç"
	msgWorkerFallbackRole = "Kuaför"

	msgChooseServiceButton = "Hizmet Seç"
	msgChooseDateButton    = "Tarih Seç"
	msgChooseTimeButton    = "Saat Seç"
	msgChooseCancelButton  = "Randevu Seç"

	msgInvalidSelection = "❌ Geçersiz seçim. Lütfen tekrar deneyin."
	msgWorkerNotFound   = "❌ Çalışan bulunamadı. Lütfen tekrar deneyin."
	msgSelectWorkerTip  = "❌ Lütfen önce bir çalışan seçin. /randevu"
	msgInvalidDate      = "❌ Geçersiz tarih. Lütfen tekrar deneyin."
	msgInvalidTime      = "❌ Geçersiz saat. Lütfen tekrar deneyin."
	msgGenericError     = "❌ Bir hata oluştu. Lütfen tekrar deneyin. /randevu"
	msgSlotGone         = "❌ Bu saat artık müsait değil. Lütfen başka bir saat seçin. /randevu"
	msgDateExpired      = "❌ Seçtiğiniz tarih geçerliliğini yitirdi. Lütfen yeni bir tarih seçin. /randevu"

	msgMoreTimesTitle = "▶️ Daha fazla saat"
	msgMoreTimesDesc  = "Akşam saatlerini göster"

	msgBookingAborted = "Randevu oluşturma iptal edildi. Yeni randevu için /randevu yazabilirsiniz."

	msgNoActiveAppointments  = "❌ Aktif randevunuz bulunmamaktadır."
	msgChooseCancelBody      = "❌ İptal etmek istediğiniz randevuyu seçin:"
	msgInvalidAppointment    = "❌ Geçersiz randevu. Lütfen tekrar deneyin."
	msgCancelFailed          = "❌ Randevu iptal edilemedi. Lütfen daha sonra tekrar deneyin."
	msgConfirmButtonYesTitle = "✅ Evet, Onayla"
	msgConfirmButtonNoTitle  = "❌ Hayır, İptal"

	msgInstagramPrefix = "📸 Bizi Instagram'da takip edin: "
)
