package repositories

import "errors"

// ErrNotFound gorm.ErrRecordNotFound'un servis katmanına taşınan karşılığıdır.
// Repository'ler DB detayını sızdırmamak için bu hatayı döndürür.
var ErrNotFound = errors.New("kayıt bulunamadı")

// ErrDuplicate unique kısıt ihlalinin servis katmanına taşınan karşılığıdır.
var ErrDuplicate = errors.New("kayıt zaten mevcut")
